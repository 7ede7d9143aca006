package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentpay-chain/agentpay/gateway"
)

const (
	flagGatewayConfig   = "config"
	flagListen          = "listen"
	flagMetricsListen   = "metrics-listen"
	flagCORSOrigins     = "cors-origins"
	flagRateLimit       = "rate-limit"
	flagRateBurst       = "rate-burst"
	flagReadTimeout     = "read-timeout"
	flagWriteTimeout    = "write-timeout"
	flagOTLPEndpoint    = "otlp-endpoint"
	flagTraceSampleRate = "trace-sample-rate"
)

// GatewayCmd runs the REST gateway against a node. Settings come from the
// optional TOML file, then flags and AGENTPAY_ environment variables.
func GatewayCmd(v *viper.Viper) *cobra.Command {
	def := gateway.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Serve the agentpay REST routes, health checks and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			cfg := gateway.DefaultConfig()
			if path, _ := cmd.Flags().GetString(flagGatewayConfig); path != "" {
				if cfg, err = gateway.LoadConfig(path); err != nil {
					return err
				}
			}
			if err := gateway.ApplyOverrides(&cfg, v, ""); err != nil {
				return err
			}
			if cmd.Flags().Changed(flags.FlagNode) || cfg.NodeRPC == def.NodeRPC {
				cfg.NodeRPC = clientCtx.NodeURI
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := gateway.NewServer(ctx, cfg, logger, clientCtx, gateway.NewRPCNodeChecker(cfg.NodeRPC))
			if err != nil {
				return err
			}
			logger.Info("starting gateway", "listen", cfg.ListenAddr, "node", cfg.NodeRPC)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().String(flagGatewayConfig, "", "Path to a TOML file with a [gateway] table")
	cmd.Flags().String(flagListen, def.ListenAddr, "REST listen address")
	cmd.Flags().String(flagMetricsListen, def.MetricsAddr, "Prometheus listen address, empty to disable")
	cmd.Flags().StringSlice(flagCORSOrigins, def.CORSOrigins, "Allowed CORS origins")
	cmd.Flags().Float64(flagRateLimit, def.RateLimit, "Requests per second per client IP, 0 to disable")
	cmd.Flags().Int(flagRateBurst, def.RateBurst, "Rate limiter burst size")
	cmd.Flags().Duration(flagReadTimeout, def.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration(flagWriteTimeout, def.WriteTimeout, "HTTP write timeout")
	cmd.Flags().String(flagOTLPEndpoint, "", "OTLP/HTTP collector host:port, empty disables tracing")
	cmd.Flags().Float64(flagTraceSampleRate, def.TraceSampleRate, "Trace sampling ratio")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
