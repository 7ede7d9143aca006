package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/codec/address"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentpay-chain/agentpay/app"
	"github.com/agentpay-chain/agentpay/x/agentpay"
	"github.com/agentpay-chain/agentpay/x/agentpay/client/cli"
)

const (
	// Bech32PrefixAccAddr is the account address prefix.
	Bech32PrefixAccAddr = "apay"

	// EnvPrefix prefixes every environment override, e.g. AGENTPAY_NODE.
	EnvPrefix = "AGENTPAY"

	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

var sdkConfigOnce sync.Once

// DefaultHome is where the keyring and client config live unless --home is set.
var DefaultHome = func() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".agentpay"
	}
	return filepath.Join(userHome, ".agentpay")
}()

// initSDKConfig sets the agentpay bech32 prefixes once per process.
func initSDKConfig() {
	sdkConfigOnce.Do(func() {
		config := sdk.GetConfig()
		config.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccAddr+sdk.PrefixPublic)
		config.SetBech32PrefixForValidator(Bech32PrefixAccAddr+sdk.PrefixValidator+sdk.PrefixOperator,
			Bech32PrefixAccAddr+sdk.PrefixValidator+sdk.PrefixOperator+sdk.PrefixPublic)
		config.SetBech32PrefixForConsensusNode(Bech32PrefixAccAddr+sdk.PrefixValidator+sdk.PrefixConsensus,
			Bech32PrefixAccAddr+sdk.PrefixValidator+sdk.PrefixConsensus+sdk.PrefixPublic)
		config.Seal()
	})
}

// NewRootCmd creates the agentpay command tree. Every flag can also be set
// through an AGENTPAY_ prefixed environment variable.
func NewRootCmd() *cobra.Command {
	initSDKConfig()

	encodingConfig, err := app.MakeEncodingConfig()
	if err != nil {
		panic(err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	initClientCtx := client.Context{}.
		WithCodec(encodingConfig.Codec).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
		WithTxConfig(encodingConfig.TxConfig).
		WithLegacyAmino(encodingConfig.Amino).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithAddressCodec(address.NewBech32Codec(Bech32PrefixAccAddr)).
		WithValidatorAddressCodec(address.NewBech32Codec(Bech32PrefixAccAddr + sdk.PrefixValidator + sdk.PrefixOperator)).
		WithConsensusAddressCodec(address.NewBech32Codec(Bech32PrefixAccAddr + sdk.PrefixValidator + sdk.PrefixConsensus)).
		WithHomeDir(DefaultHome).
		WithInput(os.Stdin).
		WithOutput(os.Stdout).
		WithViper(EnvPrefix)

	rootCmd := &cobra.Command{
		Use:           "agentpay",
		Short:         "Agentpay escrow marketplace tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			if err := bindFlags(cmd, v); err != nil {
				return err
			}

			clientCtx := initClientCtx.WithCmdContext(cmd.Context()).WithOutput(cmd.OutOrStdout())
			clientCtx, err := client.ReadPersistentCommandFlags(clientCtx, cmd.Flags())
			if err != nil {
				return err
			}
			return client.SetCmdClientContextHandler(clientCtx, cmd)
		},
	}
	rootCmd.PersistentFlags().String(flags.FlagHome, DefaultHome, "Directory for the keyring and client config")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "Log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String(flagLogFormat, "plain", "Log format (plain|json)")

	rootCmd.AddCommand(
		queryCommand(),
		txCommand(),
		cli.GetZKCmd(),
		cli.GetAddressCmd(),
		GatewayCmd(v),
	)
	return rootCmd
}

func queryCommand() *cobra.Command {
	cmd := agentpay.AppModuleBasic{}.GetQueryCmd()
	cmd.Use = "query"
	cmd.Aliases = []string{"q"}
	cmd.PersistentFlags().String(flags.FlagChainID, "", "The network chain ID")
	return cmd
}

func txCommand() *cobra.Command {
	cmd := agentpay.AppModuleBasic{}.GetTxCmd()
	cmd.Use = "tx"
	cmd.PersistentFlags().String(flags.FlagChainID, "", "The network chain ID")
	return cmd
}

// bindFlags fills every flag the user did not set from its environment
// variable, so AGENTPAY_NODE behaves like --node.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	return firstErr
}

// newLogger builds the process logger from --log-level and --log-format.
func newLogger(cmd *cobra.Command) (log.Logger, error) {
	levelStr, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	format, err := cmd.Flags().GetString(flagLogFormat)
	if err != nil {
		return nil, err
	}

	opts := []log.Option{log.LevelOption(level)}
	if format == "json" {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(cmd.ErrOrStderr(), opts...).With(log.ModuleKey, "agentpay"), nil
}
