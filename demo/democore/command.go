// This file contains the command-record kind enumeration (spec.md §3, CommandRecord).

package democore

// Command kind IDs, as they appear in the outer command-record stream.
const (
	CommandKindSignon       byte = 1
	CommandKindPacket       byte = 2
	CommandKindSyncTick     byte = 3
	CommandKindConsoleCmd   byte = 4
	CommandKindUserCmd      byte = 5
	CommandKindDataTables   byte = 6
	CommandKindStop         byte = 7
	CommandKindCustomData   byte = 8
	CommandKindStringTables byte = 9
)

// CommandKind describes the kind of a command record.
type CommandKind struct {
	Enum

	// ID as it appears in the demo
	ID byte
}

// CommandKinds is an enumeration of the valid command record kinds.
var CommandKinds = []*CommandKind{
	{Enum{"Signon"}, CommandKindSignon},
	{Enum{"Packet"}, CommandKindPacket},
	{Enum{"SyncTick"}, CommandKindSyncTick},
	{Enum{"ConsoleCmd"}, CommandKindConsoleCmd},
	{Enum{"UserCmd"}, CommandKindUserCmd},
	{Enum{"DataTables"}, CommandKindDataTables},
	{Enum{"Stop"}, CommandKindStop},
	{Enum{"CustomData"}, CommandKindCustomData},
	{Enum{"StringTables"}, CommandKindStringTables},
}

// commandKindByID maps from command kind ID to CommandKind.
var commandKindByID = map[byte]*CommandKind{}

func init() {
	for _, c := range CommandKinds {
		commandKindByID[c.ID] = c
	}
}

// CommandKindByID returns the CommandKind for a given ID.
// nil is returned if ID does not identify one of the 9 valid command kinds
// (the caller must treat this as a fatal BadCommand condition, see spec.md §7).
func CommandKindByID(ID byte) *CommandKind {
	return commandKindByID[ID]
}
