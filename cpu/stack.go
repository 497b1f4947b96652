package cpu

// The stack lives in STACK_PAGE. SP holds the offset of the next free
// slot and moves down as values are pushed. Byte arithmetic wraps it
// within the page; there are no overflow or underflow diagnostics.

// push writes value at the stack pointer and moves the pointer down.
func (cpu *Cpu) push(value byte) {
	cpu.Mem.Write(STACK_PAGE+uint16(cpu.SP), value)
	cpu.SP--
}

// pop moves the stack pointer up and reads the value there.
func (cpu *Cpu) pop() (value byte) {
	cpu.SP++
	value = cpu.Mem.Read(STACK_PAGE + uint16(cpu.SP))
	return
}
