////////////////////////////////////////////////////////////////////////////////
// Polkapad Sale: a timed token-sale (IDO) contract
////////////////////////////////////////////////////////////////////////////////

//go:build wasm

package main

import "polkapad_sale/contract"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Exported contract surface
// -----------------------------------------------------------------------------

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return contract.ContractInit(payload) }

//go:wasmexport create_sale
func CreateSale(payload *string) *string { return contract.CreateSale(payload) }

//go:wasmexport set_sale_token
func SetSaleToken(payload *string) *string { return contract.SetSaleToken(payload) }

//go:wasmexport set_sale_time
func SetSaleTime(payload *string) *string { return contract.SetSaleTime(payload) }

//go:wasmexport set_registration_time
func SetRegistrationTime(payload *string) *string { return contract.SetRegistrationTime(payload) }

//go:wasmexport set_max_allocation_sizes
func SetMaxAllocationSizes(payload *string) *string { return contract.SetMaxAllocationSizes(payload) }

//go:wasmexport remove_registered
func RemoveRegistered(payload *string) *string { return contract.RemoveRegistered(payload) }

//go:wasmexport close_gate
func CloseGate(payload *string) *string { return contract.CloseGate(payload) }

//go:wasmexport register_on_sale
func RegisterOnSale(payload *string) *string { return contract.RegisterOnSale(payload) }

//go:wasmexport participate
func Participate(payload *string) *string { return contract.Participate(payload) }

//go:wasmexport deposit_tokens
func DepositTokens(payload *string) *string { return contract.DepositTokens(payload) }

//go:wasmexport withdraw_allocation
func WithdrawAllocation(payload *string) *string { return contract.WithdrawAllocation(payload) }

//go:wasmexport withdraw_earnings
func WithdrawEarnings(payload *string) *string { return contract.WithdrawEarnings(payload) }

//go:wasmexport withdraw_leftover
func WithdrawLeftover(payload *string) *string { return contract.WithdrawLeftover(payload) }

//go:wasmexport withdraw_registration_fees
func WithdrawRegistrationFees(payload *string) *string {
	return contract.WithdrawRegistrationFees(payload)
}

//go:wasmexport get_sale_token
func GetSaleToken(payload *string) *string { return contract.GetSaleToken(payload) }

//go:wasmexport get_sale_owner
func GetSaleOwner(payload *string) *string { return contract.GetSaleOwner(payload) }

//go:wasmexport get_total_sold
func GetTotalSold(payload *string) *string { return contract.GetTotalSold(payload) }

//go:wasmexport get_total_raised
func GetTotalRaised(payload *string) *string { return contract.GetTotalRaised(payload) }

//go:wasmexport get_round_times
func GetRoundTimes(payload *string) *string { return contract.GetRoundTimes(payload) }

//go:wasmexport get_allocation_of
func GetAllocationOf(payload *string) *string { return contract.GetAllocationOf(payload) }

//go:wasmexport get_participation_of
func GetParticipationOf(payload *string) *string { return contract.GetParticipationOf(payload) }
