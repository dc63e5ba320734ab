package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"
	"text/tabwriter"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/poa-contract/rpc/poatoken"
	"github.com/spf13/cobra"
)

const (
	tokenFlag   = "token"
	holdersFlag = "holders"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print state of the PoA Token contract",
	Long: `Prints configuration, stage, funding and payout state of the PoA Token contract.
With --holders it also lists all token holders found in the contract storage
(requires state root support of the RPC node).`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringP(tokenFlag, "t", "", "Address or hash (LE) of the PoA Token contract")
	inspectCmd.Flags().Bool(holdersFlag, false, "List token holders with their balances and payouts")
}

type holder struct {
	addr    util.Uint160
	balance *big.Int
	payout  *big.Int
}

func runInspect(cmd *cobra.Command, _ []string) error {
	s, err := cmd.Flags().GetString(tokenFlag)
	if err != nil {
		return err
	}
	if s == "" {
		return errors.New("missing PoA Token contract address")
	}
	tokenHash, err := parseHash(s)
	if err != nil {
		return fmt.Errorf("invalid PoA Token contract address: %w", err)
	}

	b, err := remoteBlockchainFromFlags(cmd)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()

	token := poatoken.NewReader(b.inv, tokenHash)

	err = printState(cmd.OutOrStdout(), token)
	if err != nil {
		return err
	}

	withHolders, err := cmd.Flags().GetBool(holdersFlag)
	if err != nil || !withHolders {
		return err
	}

	var holders []holder

	err = b.iterateContractStorage(tokenHash, []byte{poatoken.BalancePrefix}, func(key, value []byte) error {
		h, balance, err := poatoken.ParseBalanceItem(key, value)
		if err != nil {
			return err
		}
		payout, err := token.CurrentPayout(h, true)
		if err != nil {
			return fmt.Errorf("get payout of %s: %w", address.Uint160ToString(h), err)
		}
		holders = append(holders, holder{addr: h, balance: balance, payout: payout})
		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate token holders: %w", err)
	}

	printHolders(cmd.OutOrStdout(), holders)

	return nil
}

func printState(out io.Writer, token *poatoken.ContractReader) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	name, err := token.Name()
	if err != nil {
		return fmt.Errorf("get name: %w", err)
	}
	symbol, err := token.Symbol()
	if err != nil {
		return fmt.Errorf("get symbol: %w", err)
	}
	stage, err := token.Stage()
	if err != nil {
		return fmt.Errorf("get stage: %w", err)
	}
	paused, err := token.Paused()
	if err != nil {
		return fmt.Errorf("get paused: %w", err)
	}

	fmt.Fprintf(w, "Name:\t%s (%s)\n", name, symbol)
	fmt.Fprintf(w, "Stage:\t%s\n", stage)
	fmt.Fprintf(w, "Paused:\t%t\n", paused)

	for _, a := range []struct {
		title string
		get   func() (util.Uint160, error)
	}{
		{"Owner", token.Owner},
		{"Broker", token.Broker},
		{"Custodian", token.Custodian},
	} {
		h, err := a.get()
		if err != nil {
			return fmt.Errorf("get %s: %w", a.title, err)
		}
		fmt.Fprintf(w, "%s:\t%s\n", a.title, address.Uint160ToString(h))
	}

	currency, err := token.FiatCurrency()
	if err != nil {
		return fmt.Errorf("get fiat currency: %w", err)
	}
	fmt.Fprintf(w, "Fiat currency:\t%s\n", currency)

	for _, v := range []struct {
		title string
		get   func() (*big.Int, error)
	}{
		{"Total supply", token.TotalSupply},
		{"Target supply", token.TargetSupply},
		{"Funding goal (cents)", token.FundingGoalInCents},
		{"Funding goal (GAS)", token.FundingGoalInGAS},
		{"Funded (GAS)", token.FundedAmountInGAS},
		{"Funded (cents)", token.FundedAmountInCentsDuringFiatFunding},
		{"Per-token payout", token.TotalPerTokenPayout},
		{"Payout dust", token.PayoutDust},
	} {
		x, err := v.get()
		if err != nil {
			return fmt.Errorf("get %s: %w", v.title, err)
		}
		fmt.Fprintf(w, "%s:\t%s\n", v.title, x)
	}

	if stage >= poatoken.StageActive {
		proof, err := token.ProofOfCustody()
		if err != nil {
			return fmt.Errorf("get proof of custody: %w", err)
		}
		fmt.Fprintf(w, "Proof of custody:\t%s\n", proof)
	}

	return w.Flush()
}

func printHolders(out io.Writer, holders []holder) {
	sort.Slice(holders, func(i, j int) bool {
		if c := holders[i].balance.Cmp(holders[j].balance); c != 0 {
			return c > 0
		}
		return holders[i].addr.Less(holders[j].addr)
	})

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\nHolder\tBalance\tPayout\n")
	for i := range holders {
		fmt.Fprintf(w, "%s\t%s\t%s\n", address.Uint160ToString(holders[i].addr), holders[i].balance, holders[i].payout)
	}
	_ = w.Flush()
}

// parseHash accepts both Neo address and LE hex string.
func parseHash(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}
	return util.Uint160DecodeStringLE(s)
}
