////////////////////////////////////////////////////////////////////////////////
// GrantVault: time-boxed escrow grants over a fungible token ledger
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose
func main() {

}
