package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tidytree/pkg/cache"
	errs "github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/observability"
	"github.com/matzehuels/tidytree/pkg/pipeline"
	"github.com/matzehuels/tidytree/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		configFile   string
		noCache      bool
		cacheBackend string
		cacheURL     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render API over HTTP",
		Long: `Serve the layout and render API over HTTP.

  POST /v1/layout  {"tree":"[1,2,3]","separation":3}          -> layout JSON
  POST /v1/render  {"tree":"[1,2,3]","ascii":true}            -> text grid
  POST /v1/render  {"tree":"[1,2,3]","format":"svg"}          -> SVG
  GET  /healthz                                               -> ok`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") && cfg.Server.Addr != "" {
				addr = cfg.Server.Addr
			}
			if !cmd.Flags().Changed("cache-backend") && cfg.Server.CacheBackend != "" {
				cacheBackend = cfg.Server.CacheBackend
			}
			if !cmd.Flags().Changed("cache-url") && cfg.Server.CacheURL != "" {
				cacheURL = cfg.Server.CacheURL
			}

			hooks := observability.NewLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetServerHooks(hooks)

			store, err := c.serverCache(cmd, noCache, cacheBackend, cacheURL)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(store, cache.NewScopedKeyer(nil, "api:"), c.Logger)
			defer runner.Close()

			return server.New(runner, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tidytree/config.toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().StringVar(&cacheBackend, "cache-backend", cache.BackendFile, "cache backend: none, file, redis or mongo")
	cmd.Flags().StringVar(&cacheURL, "cache-url", "", "cache location (directory, redis:// URL or mongodb:// URI)")
	return cmd
}

// serverCache opens the backend shared by API instances. The file backend
// defaults to the CLI cache directory.
func (c *CLI) serverCache(cmd *cobra.Command, noCache bool, backend, url string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if (backend == "" || backend == cache.BackendFile) && url == "" {
		return newCache(false)
	}
	if backend != cache.BackendFile && backend != cache.BackendNone && url == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "--cache-url is required for the %s backend", backend)
	}
	store, err := cache.Open(cmd.Context(), backend, url)
	if err != nil {
		return nil, err
	}
	c.Logger.Info("cache backend", "backend", backend)
	return store, nil
}
