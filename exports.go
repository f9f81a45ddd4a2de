//go:build wasm

package main

import "grantvault/contract"

// Thin wasm export shims; all logic lives in the contract package so unit
// tests can drive the same entry points against the mocked host.

//go:wasmexport contract_init
func contractInit(payload *string) *string { return contract.Init(payload) }

//go:wasmexport contract_owner
func contractOwner(payload *string) *string { return contract.Owner(payload) }

//go:wasmexport grant_create
func grantCreate(payload *string) *string { return contract.CreateGrant(payload) }

//go:wasmexport grant_fund
func grantFund(payload *string) *string { return contract.FundGrant(payload) }

//go:wasmexport grant_withdraw
func grantWithdraw(payload *string) *string { return contract.WithdrawGrant(payload) }

//go:wasmexport grant_claim
func grantClaim(payload *string) *string { return contract.ClaimGrant(payload) }

//go:wasmexport grant_remove
func grantRemove(payload *string) *string { return contract.RemoveGrant(payload) }

//go:wasmexport grant_get
func grantGet(payload *string) *string { return contract.GetGrant(payload) }

//go:wasmexport grant_funders
func grantFunders(payload *string) *string { return contract.GetContribution(payload) }

//go:wasmexport grant_count
func grantCount(payload *string) *string { return contract.CurrentGrantID(payload) }

//go:wasmexport token_balance
func tokenBalance(payload *string) *string { return contract.TokenBalance(payload) }

//go:wasmexport token_allowance
func tokenAllowance(payload *string) *string { return contract.TokenAllowance(payload) }

//go:wasmexport token_approve
func tokenApprove(payload *string) *string { return contract.TokenApprove(payload) }

//go:wasmexport token_transfer
func tokenTransfer(payload *string) *string { return contract.TokenTransfer(payload) }

//go:wasmexport token_transfer_from
func tokenTransferFrom(payload *string) *string { return contract.TokenTransferFrom(payload) }

//go:wasmexport token_mint
func tokenMint(payload *string) *string { return contract.TokenMint(payload) }
