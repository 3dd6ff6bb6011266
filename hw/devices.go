package hw

// Bus is the capability handed to the processor at construction. Each call
// charges the access its master cycles (DMA first, then the clock) before the
// access is resolved.
type Bus interface {
	CPURead(addr uint32) uint8
	CPUWrite(addr uint32, val uint8)
	CPUIdle(waiting bool)
}

// Host is the capability handed to the DMA engine at construction.
type Host interface {
	RunCycles(n int)
	SyncCycles(n int)
	Read(addr uint32) uint8
	Write(addr uint32, val uint8)
	ReadBBus(adr uint8) uint8
	WriteBBus(adr uint8, val uint8)
}

// Processor is the main CPU. It drives the bus through the Bus it received
// at construction.
type Processor interface {
	// RunOpcode executes one instruction, or one idle slot when the
	// processor is halted or waiting for an interrupt.
	RunOpcode()
	SetIRQ(asserted bool)
	NMI()
	Reset(hard bool)
}

// SoundUnit is the sound co-processor, clocked lazily by the core.
type SoundUnit interface {
	Cycle()
	// ReadPort returns one of the 4 bytes written by the sound unit.
	ReadPort(i int) uint8
	// WritePort sets one of the 4 bytes read by the sound unit.
	WritePort(i int, val uint8)
	Reset()
}

// PixelUnit is the picture processor.
type PixelUnit interface {
	Read(adr uint8) uint8
	Write(adr uint8, val uint8)
	CheckOverscan() bool
	HandleVblank()
	RunLine(line int)
	Reset()
}

// DMAEngine handles general purpose and horizontal-blank DMA.
type DMAEngine interface {
	Read(adr uint16) uint8
	Write(adr uint16, val uint8)
	Start(channels uint8, hdma bool)
	// HandleDMA runs pending transfers, cycles is the cost of the access
	// about to be performed by the processor.
	HandleDMA(cycles int)
	RequestHDMAInit()
	RequestHDMARun()
	Reset()
}

// Cartridge handles all addresses not claimed by the console itself.
type Cartridge interface {
	// Read returns false when nothing responds at the address.
	Read(bank uint8, adr uint16) (uint8, bool)
	Write(bank uint8, adr uint16, val uint8)
	Reset()
}

// ControllerPort is one of the two serial controller ports.
type ControllerPort interface {
	Cycle()
	Read() uint8
	SetLatch(latch bool)
	Reset()
}

// Devices describes the collaborators plugged into the core. Nil entries are
// replaced with inert implementations.
type Devices struct {
	NewCPU func(Bus) (Processor, error)
	NewDMA func(Host) (DMAEngine, error)

	APU   SoundUnit
	PPU   PixelUnit
	Cart  Cartridge
	Input [2]ControllerPort
}

// idleCPU spends each opcode slot as a 6-cycle idle bus cycle.
type idleCPU struct{ bus Bus }

func (c idleCPU) RunOpcode() { c.bus.CPUIdle(true) }
func (idleCPU) SetIRQ(bool)  {}
func (idleCPU) NMI()         {}
func (idleCPU) Reset(bool)   {}

type nopAPU struct{ out [4]uint8 }

func (*nopAPU) Cycle()                 {}
func (a *nopAPU) ReadPort(i int) uint8 { return a.out[i&3] }
func (*nopAPU) WritePort(int, uint8)   {}
func (a *nopAPU) Reset()               { a.out = [4]uint8{} }

type nopPPU struct{}

func (nopPPU) Read(uint8) uint8    { return 0 }
func (nopPPU) Write(uint8, uint8)  {}
func (nopPPU) CheckOverscan() bool { return false }
func (nopPPU) HandleVblank()       {}
func (nopPPU) RunLine(int)         {}
func (nopPPU) Reset()              {}

// regsDMA keeps the channel registers so that they read back what was
// written, but never transfers anything.
type regsDMA struct{ regs [0x80]uint8 }

func newRegsDMA() *regsDMA {
	d := &regsDMA{}
	d.Reset()
	return d
}

func (d *regsDMA) Read(adr uint16) uint8       { return d.regs[adr&0x7f] }
func (d *regsDMA) Write(adr uint16, val uint8) { d.regs[adr&0x7f] = val }
func (*regsDMA) Start(uint8, bool)             {}
func (*regsDMA) HandleDMA(int)                 {}
func (*regsDMA) RequestHDMAInit()              {}
func (*regsDMA) RequestHDMARun()               {}

// Reset sets all registers to $FF, their power-on value.
func (d *regsDMA) Reset() {
	for i := range d.regs {
		d.regs[i] = 0xff
	}
}

type openBusCart struct{}

func (openBusCart) Read(uint8, uint16) (uint8, bool) { return 0, false }
func (openBusCart) Write(uint8, uint16, uint8)       {}
func (openBusCart) Reset()                           {}

// unpluggedPort reads as all zeroes, like an empty controller socket.
type unpluggedPort struct{}

func (unpluggedPort) Cycle()        {}
func (unpluggedPort) Read() uint8   { return 0 }
func (unpluggedPort) SetLatch(bool) {}
func (unpluggedPort) Reset()        {}
