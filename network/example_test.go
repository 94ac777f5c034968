package network_test

import (
	"fmt"

	"github.com/smartins1234/netroute/network"
)

// ExampleNetwork_Connect builds a two-node network whose edge length is
// derived from the node locations.
func ExampleNetwork_Connect() {
	net := network.New(2)
	a := net.AddNode(network.Point{X: 0, Y: 0})
	b := net.AddNode(network.Point{X: 30, Y: 40})

	e, err := net.Connect(a.ID, b.ID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s → %s length=%.0f\n", a.Loc, b.Loc, e.Length)
	// Output: (0,0) → (30,40) length=50
}
