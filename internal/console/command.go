package console

import "strings"

// command enumerates the menu choices. The numeric value doubles as the
// menu label shown to the user.
type command int

const (
	commandUnknown command = iota
	commandAddPlot
	commandListPlots
	commandUpdatePlot
	commandDeletePlot
	commandComputeInput
	commandExit
)

var menuOrder = []command{
	commandAddPlot,
	commandListPlots,
	commandUpdatePlot,
	commandDeletePlot,
	commandComputeInput,
	commandExit,
}

func parseCommand(choice string) command {
	switch strings.TrimSpace(choice) {
	case "1":
		return commandAddPlot
	case "2":
		return commandListPlots
	case "3":
		return commandUpdatePlot
	case "4":
		return commandDeletePlot
	case "5":
		return commandComputeInput
	case "6":
		return commandExit
	default:
		return commandUnknown
	}
}

func (c command) label() string {
	switch c {
	case commandAddPlot:
		return "Add Plot"
	case commandListPlots:
		return "List Plots"
	case commandUpdatePlot:
		return "Update Plot"
	case commandDeletePlot:
		return "Delete Plot"
	case commandComputeInput:
		return "Compute Input Volume"
	case commandExit:
		return "Exit"
	default:
		return "Unknown"
	}
}
