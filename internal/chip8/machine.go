package chip8

// Register identifies one of the sixteen data registers V0..VF. VF doubles
// as the flags register: arithmetic, shift, and draw instructions write to
// it as an ordinary register that also receives a side-channel result.
type Register uint8

// The sixteen data registers.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
)

// RegisterFromNibble maps a decoded nibble to its register identifier.
func RegisterFromNibble(n Nibble) Register {
	return Register(n)
}

func (r Register) String() string {
	const digits = "0123456789ABCDEF"
	return "V" + string(digits[r&0xF])
}

const (
	// MemSize is the total addressable memory, in bytes.
	MemSize = 0x1000

	// ProgramStart is the address program bytes are loaded at and PC
	// begins executing from.
	ProgramStart = 0x200

	// maxProgramSize is the largest program that fits after ProgramStart.
	maxProgramSize = MemSize - ProgramStart

	// stackDepth is the number of call-stack slots.
	stackDepth = 16
)

// Machine is the complete architectural state of a CHIP-8 interpreter at
// an instruction boundary. The zero value is not valid; use New.
type Machine struct {
	Memory [MemSize]byte
	V      [16]byte
	I      uint16
	PC     uint16
	SP     uint8
	Stack  [stackDepth]uint16
	Delay  byte
	Sound  byte
	Screen Framebuffer
}

// New returns a freshly initialized Machine: zero memory (aside from the
// built-in font, loaded at FontBase), PC at ProgramStart, everything else
// zero.
func New() *Machine {
	m := &Machine{PC: ProgramStart}
	copy(m.Memory[FontBase:], Font[:])
	return m
}

// Clone returns a deep copy, the unit of a debugger history snapshot.
func (m *Machine) Clone() *Machine {
	c := *m
	return &c
}

// LoadMemory writes a program image starting at ProgramStart. It fails if
// the image cannot fit in the remaining address space, without mutating
// memory.
func (m *Machine) LoadMemory(program []byte) error {
	if len(program) > maxProgramSize {
		return &LoadError{Size: len(program), Limit: maxProgramSize}
	}
	copy(m.Memory[ProgramStart:], program)
	return nil
}

// CallStack returns the valid prefix of the call stack, stack[0:SP].
func (m *Machine) CallStack() []uint16 {
	return m.Stack[:m.SP]
}
