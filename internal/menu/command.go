package menu

// Command is one parsed main menu choice.
type Command int

const (
	CommandUnknown Command = iota
	CommandRun
	CommandAbout
	CommandExit
	CommandEaster
)

// ParseCommand matches input exactly; surrounding spaces make it unknown.
func ParseCommand(input string) Command {
	switch input {
	case "1":
		return CommandRun
	case "2":
		return CommandAbout
	case "3":
		return CommandExit
	case "31":
		return CommandEaster
	default:
		return CommandUnknown
	}
}

// AboutCommand is one parsed choice on the about screen.
type AboutCommand int

const (
	AboutUnknown AboutCommand = iota
	AboutBack
	AboutExit
)

func ParseAboutCommand(input string) AboutCommand {
	switch input {
	case "1":
		return AboutBack
	case "2":
		return AboutExit
	default:
		return AboutUnknown
	}
}
