// cubeless - a terminal 3x3x3 cube simulator.
package main

import (
	"github.com/SeamusWaldron/cubeless/internal/cli"
)

func main() {
	cli.Execute()
}
