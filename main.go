////////////////////////////////////////////////////////////////////////////////
// Offset Registry: carbon offset credit accounting for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose; the contract entry points live in contract/.
func main() {

}
