//go:build !wasm

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"polkapad_sale/contract"
	"polkapad_sale/sdk"
)

// Local harness: runs one contract action against a bolt-backed state file,
// so contract storage survives between invocations exactly like host storage
// does on chain.
//
//	polkapad_sale <method> [payload] [flags]
//
// Flags (after the payload):
//	--sender <addr>   message sender (required for most actions)
//	--value  <dec>    attached native value, decimal u128
//	--db     <path>   state file, default ./polkapad_sale.db

var handlers = map[string]func(*string) *string{
	"contract_init":              contract.ContractInit,
	"create_sale":                contract.CreateSale,
	"set_sale_token":             contract.SetSaleToken,
	"set_sale_time":              contract.SetSaleTime,
	"set_registration_time":      contract.SetRegistrationTime,
	"set_max_allocation_sizes":   contract.SetMaxAllocationSizes,
	"remove_registered":          contract.RemoveRegistered,
	"close_gate":                 contract.CloseGate,
	"register_on_sale":           contract.RegisterOnSale,
	"participate":                contract.Participate,
	"deposit_tokens":             contract.DepositTokens,
	"withdraw_allocation":        contract.WithdrawAllocation,
	"withdraw_earnings":          contract.WithdrawEarnings,
	"withdraw_leftover":          contract.WithdrawLeftover,
	"withdraw_registration_fees": contract.WithdrawRegistrationFees,
	"get_sale_token":             contract.GetSaleToken,
	"get_sale_owner":             contract.GetSaleOwner,
	"get_total_sold":             contract.GetTotalSold,
	"get_total_raised":           contract.GetTotalRaised,
	"get_round_times":            contract.GetRoundTimes,
	"get_allocation_of":          contract.GetAllocationOf,
	"get_participation_of":       contract.GetParticipationOf,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	method := os.Args[1]
	handler, ok := handlers[method]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown method %q\n", method)
		usage()
		os.Exit(2)
	}

	var payload *string
	args := os.Args[2:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		payload = &args[0]
		args = args[1:]
	}

	sender := ""
	value := "0"
	dbPath := "polkapad_sale.db"
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--sender":
			i++
			sender = flagValue(args, i)
		case "--value":
			i++
			value = flagValue(args, i)
		case "--db":
			i++
			dbPath = flagValue(args, i)
		default:
			fmt.Fprintf(os.Stderr, "unknown flag %q\n", args[i])
			os.Exit(2)
		}
	}

	state, err := sdk.OpenBoltState(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open state: %v\n", err)
		os.Exit(1)
	}
	defer state.Close()

	sdk.Host.State = state
	sdk.Host.Env.ContractId = "polkapad_sale"
	sdk.Host.SetSender(sdk.Address(sender))
	sdk.Host.SetValue(value)
	sdk.Host.SetTimestamp(strconv.FormatInt(time.Now().UnixMilli(), 10))

	defer func() {
		for _, line := range sdk.Host.LogLines {
			fmt.Fprintln(os.Stderr, "log: "+line)
		}
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "aborted: %v\n", r)
			os.Exit(1)
		}
	}()

	reply := handler(payload)
	if reply != nil {
		fmt.Println(*reply)
	}
}

func flagValue(args []string, i int) string {
	if i >= len(args) {
		fmt.Fprintln(os.Stderr, "missing flag value")
		os.Exit(2)
	}
	return args[i]
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: polkapad_sale <method> [payload] [--sender addr] [--value dec] [--db path]")
}
