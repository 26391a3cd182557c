package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/clerkmount/clerkmount"
	. "github.com/clerkmount/clerkmount/el"
	"github.com/clerkmount/clerkmount/internal/dev"
	"github.com/clerkmount/clerkmount/pkg/app"
	"github.com/clerkmount/clerkmount/pkg/assets"
	"github.com/clerkmount/clerkmount/pkg/clerk"
	"github.com/clerkmount/clerkmount/pkg/routekey"
)

// indexPage is the demo landing page linking to the installed auth routes.
func indexPage(signinRoute, signupRoute string) *VNode {
	return Main(
		StyleAttr("display:flex;flex-direction:column;align-items:center;justify-content:center;height:100vh;gap:16px;font-family:sans-serif"),
		H1(Text("clerkmount demo")),
		P(Text("Pre-built Clerk auth pages, served from Go.")),
		Div(StyleAttr("display:flex;gap:16px"),
			A(Href(signinRoute), Text("Sign in")),
			A(Href(signupRoute), Text("Sign up")),
		),
	)
}

func serveCmd() *cobra.Command {
	var (
		addr        string
		title       string
		signinRoute string
		signupRoute string
		assetsDir   string
		styles      []string
		devMode     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Clerk sign-in and sign-up pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel(devMode),
			}))

			clerkCfg, err := clerk.FromEnv()
			if err != nil {
				return err
			}
			if clerkCfg.PublishableKey == "" {
				logger.Warn("CLERK_PUBLISHABLE_KEY is not set; the widgets will fail to initialize")
			}

			cfg := app.Config{
				Title:       title,
				StyleSheets: styles,
				DevMode:     devMode,
				Logger:      logger,
			}
			if assetsDir != "" {
				cfg.Assets = assets.NewDir(assetsDir)
			}

			var reload *dev.ReloadServer
			if devMode {
				reload = dev.NewReloadServer()
				defer reload.Close()
				cfg.Reload = reload
				cfg.BodyScripts = append(cfg.BodyScripts, dev.ClientScript)
				cfg.Pretty = true
			}

			a := app.New(cfg)
			clerkmount.InstallPages(a,
				clerkmount.WithClerkConfig(clerkCfg),
				clerkmount.WithSignInRoute(signinRoute),
				clerkmount.WithSignUpRoute(signupRoute),
			)
			// Root catch-all: any path not claimed by the auth pages
			// lands on the demo index.
			a.SetPage(routekey.ForRoute("/", "home"), indexPage(signinRoute, signupRoute))

			fmt.Printf("serving sign-in at %s and sign-up at %s on %s\n", signinRoute, signupRoute, addr)
			return a.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&title, "title", "Sign in", "document title for the auth pages")
	cmd.Flags().StringVar(&signinRoute, "signin-route", clerkmount.DefaultSignInRoute, "route for the sign-in page")
	cmd.Flags().StringVar(&signupRoute, "signup-route", clerkmount.DefaultSignUpRoute, "route for the sign-up page")
	cmd.Flags().StringVar(&assetsDir, "assets", "", "directory of branding assets served under /assets/")
	cmd.Flags().StringSliceVar(&styles, "stylesheet", nil, "stylesheet URLs linked into the pages")
	cmd.Flags().BoolVar(&devMode, "dev", false, "development mode: pretty HTML, no caching, live reload")

	return cmd
}

func logLevel(devMode bool) slog.Level {
	if devMode {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
