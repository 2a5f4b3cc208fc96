package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu    *Cpu
	offset uint16 // base address shown by the page table

	prevPC uint16
	error  error
}

// Init starts the debugger with the Cpu wherever its caller left PC; unlike
// the teacher, this debugger never loads a program itself, since memory is
// owned by the bus the embedder wired up.
func (m model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.cpu.Step(); err != nil {
				m.error = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders 16 bytes of bus memory starting at start as a line,
// highlighting the current PC if it falls within the range.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b, err := m.cpu.Bus.Read(addr)
		if err != nil {
			s += " ??  "
			continue
		}
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	flags := "  "
	for _, set := range []bool{m.cpu.Zero(), m.cpu.Negative(), m.cpu.HalfCarry(), m.cpu.Carry()} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}

	mode := "RUN"
	switch m.cpu.Mode {
	case Halt:
		mode = "HALT"
	case Stop:
		mode = "STOP"
	}

	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
 A: %02x F: %02x
 B: %02x C: %02x
 D: %02x E: %02x
 H: %02x L: %02x
IME: %v  mode: %s
Z N H CY
%s
`,
		m.cpu.PC, m.prevPC,
		m.cpu.SP,
		m.cpu.A, m.cpu.F(),
		m.cpu.B, m.cpu.C,
		m.cpu.D, m.cpu.E,
		m.cpu.H, m.cpu.L,
		m.cpu.IME, mode,
		flags,
	)
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}
	base := m.cpu.PC &^ 0x00ff
	for i := uint16(0); i < 10; i++ {
		pages = append(pages, m.renderPage(base+i*16))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	inst := unprefixedTable[func() byte {
		b, _ := m.cpu.Bus.Read(m.cpu.PC)
		return b
	}()]

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(inst),
	)
}

// Debug starts an interactive TUI that single-steps the Cpu one instruction
// at a time, showing registers/flags/mode and a hex dump of memory around PC.
func (c *Cpu) Debug() {
	m, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
