package engraver

// Opcodes of the NEJE v1 control protocol. Every command is a single
// opcode byte; the burn time is transmitted as a bare byte immediately
// ahead of the start opcode.
const (
	opStart   byte = 0xF1
	opPause   byte = 0xF2
	opHome    byte = 0xF3
	opPreview byte = 0xF4
	opUp      byte = 0xF5
	opDown    byte = 0xF6
	opLeft    byte = 0xF7
	opRight   byte = 0xF8
	opReset   byte = 0xF9
	opCenter  byte = 0xFB
	opErase   byte = 0xFE
)

// Command maps a high-level engraver action to its wire bytes. Encoding
// is deterministic and side-effect free.
type Command interface {
	Encode() []byte
}

type simpleCommand byte

func (c simpleCommand) Encode() []byte { return []byte{byte(c)} }

var (
	Pause   Command = simpleCommand(opPause)
	Reset   Command = simpleCommand(opReset)
	Home    Command = simpleCommand(opHome)
	Center  Command = simpleCommand(opCenter)
	Preview Command = simpleCommand(opPreview)
	Up      Command = simpleCommand(opUp)
	Down    Command = simpleCommand(opDown)
	Left    Command = simpleCommand(opLeft)
	Right   Command = simpleCommand(opRight)
	Erase   Command = simpleCommand(opErase)
)

// Start begins or resumes engraving with the given burn time.
type Start struct {
	BurnTime byte
}

func (s Start) Encode() []byte { return []byte{s.BurnTime, opStart} }
