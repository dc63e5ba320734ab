package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/poa-contract/contracts"
	"github.com/nspcc-dev/poa-contract/deploy"
	"github.com/nspcc-dev/poa-contract/internal/compile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	walletFlag    = "wallet"
	addressFlag   = "address"
	passwordFlag  = "password"
	assetFlag     = "asset"
	sourcesFlag   = "contracts"
	artifactsFlag = "artifacts"
	debugFlag     = "debug"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy or update PoA contracts and set up the asset",
	Long: `Deploys (or updates) registry, whitelist, exchange rates, fee manager and
PoA Token contracts, registers collaborators in the registry, sets the initial
exchange rate, whitelists listed investors and sets up the asset described in
the YAML file. Contracts are compiled from sources unless --artifacts
directory with compiled contracts is given.`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

func init() {
	ff := deployCmd.Flags()
	ff.StringP(walletFlag, "w", "", "Path to the NEP-6 wallet with the owner account")
	ff.StringP(addressFlag, "a", "", "Owner account address (first wallet account by default)")
	ff.String(passwordFlag, "", "Owner account password")
	ff.String(assetFlag, "", "Path to the YAML asset description")
	ff.String(sourcesFlag, "contracts", "Root directory of the contract sources")
	ff.String(artifactsFlag, "", "Root directory of the compiled contracts")
	ff.Bool(debugFlag, false, "Enable debug logging")

	_ = deployCmd.MarkFlagRequired(walletFlag)
	_ = deployCmd.MarkFlagRequired(assetFlag)
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	ff := cmd.Flags()

	debug, _ := ff.GetBool(debugFlag)
	logger, err := newLogger(debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var prm deploy.Prm
	prm.Logger = logger

	assetPath, _ := ff.GetString(assetFlag)
	f, err := os.Open(assetPath)
	if err != nil {
		return fmt.Errorf("open asset description: %w", err)
	}
	err = decodeAsset(f, &prm)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("read asset description: %w", err)
	}

	walletPath, _ := ff.GetString(walletFlag)
	addr, _ := ff.GetString(addressFlag)
	password, _ := ff.GetString(passwordFlag)
	prm.LocalAccount, err = openAccount(walletPath, addr, password)
	if err != nil {
		return err
	}

	artifacts, _ := ff.GetString(artifactsFlag)
	sources, _ := ff.GetString(sourcesFlag)
	cs, err := loadContracts(artifacts, sources)
	if err != nil {
		return err
	}
	prm.Registry = commonPrm(cs[0])
	prm.Whitelist = commonPrm(cs[1])
	prm.ExchangeRates = commonPrm(cs[2])
	prm.FeeManager = commonPrm(cs[3])
	prm.PoAToken = commonPrm(cs[4])

	b, err := remoteBlockchainFromFlags(cmd)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()
	prm.Blockchain = b.rpc

	res, err := deploy.Deploy(cmd.Context(), prm)
	if err != nil {
		return err
	}

	cmd.Printf("Registry:       %s\n", res.Registry.StringLE())
	cmd.Printf("Whitelist:      %s\n", res.Whitelist.StringLE())
	cmd.Printf("ExchangeRates:  %s\n", res.ExchangeRates.StringLE())
	cmd.Printf("FeeManager:     %s\n", res.FeeManager.StringLE())
	cmd.Printf("PoA Token:      %s\n", res.PoAToken.StringLE())

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = nil
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return c.Build()
}

func openAccount(walletPath, addr, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if addr == "" {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	} else {
		h, err := address.StringToUint160(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid account address: %w", err)
		}
		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", addr)
		}
	}

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}

// loadContracts reads compiled contracts from artifacts directory if it's set
// and compiles them from sources otherwise.
func loadContracts(artifacts, sources string) ([]contracts.Contract, error) {
	var (
		cs  []contracts.Contract
		err error
	)
	if artifacts != "" {
		cs, err = contracts.Read(os.DirFS(artifacts))
	} else {
		cs, err = compile.All(sources)
	}
	if err != nil {
		return nil, fmt.Errorf("load contracts: %w", err)
	}
	if len(cs) != len(contracts.Dirs()) {
		return nil, fmt.Errorf("unexpected number of contracts %d", len(cs))
	}
	return cs, nil
}

func commonPrm(c contracts.Contract) deploy.CommonDeployPrm {
	return deploy.CommonDeployPrm{NEF: c.NEF, Manifest: c.Manifest}
}
