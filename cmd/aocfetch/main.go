package main

import (
	"aocfetch/cmd/aocfetch/commands"
	"aocfetch/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
