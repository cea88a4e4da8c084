package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
)

// Options defines the listing output options.
type Options struct {
	HexComments    bool // output opcode bytes as hex values in comments
	OffsetComments bool // output addresses in comments
	ZeroBytes      bool // output trailing zero bytes

	Dialect cpu.Dialect // offset register of jumps with offset
}

// line is a single instruction or data line of the listing.
type line struct {
	address uint16
	data    []byte
	code    string
}

// Write writes a linear listing of the program as it is laid out in memory
// starting at the program start address. Jump, call and index load targets
// inside the program get labels.
func Write(w io.Writer, program []byte, opts Options) error {
	lines := parse(program, opts.Dialect)
	labels := collectLabels(lines)

	if _, err := fmt.Fprintf(w, "; CHIP-8 ROM Disassembly\n"); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}
	if _, err := fmt.Fprintf(w, ".org $%03X\n\n", memory.ProgramStart); err != nil {
		return fmt.Errorf("writing org directive: %w", err)
	}

	for _, l := range lines[:endIndex(lines, opts)] {
		if label, ok := labels[l.address]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return fmt.Errorf("writing label %s: %w", label, err)
			}
		}
		if err := writeLine(w, l, opts); err != nil {
			return err
		}
	}
	return nil
}

func parse(program []byte, dialect cpu.Dialect) []line {
	lines := make([]line, 0, len(program)/opcode.Size+1)
	address := uint16(memory.ProgramStart)

	for i := 0; i < len(program); i += opcode.Size {
		if i+1 >= len(program) {
			lines = append(lines, line{
				address: address,
				data:    program[i:],
				code:    fmt.Sprintf(".byte $%02X", program[i]),
			})
			break
		}

		ins := opcode.New(program[i], program[i+1])
		code := Format(ins, dialect)
		if _, ok := Lookup(ins); !ok {
			code = fmt.Sprintf(".byte $%02X, $%02X", program[i], program[i+1])
		}
		lines = append(lines, line{
			address: address,
			data:    program[i : i+opcode.Size],
			code:    code,
		})
		address += opcode.Size
	}
	return lines
}

func collectLabels(lines []line) map[uint16]string {
	labels := map[uint16]string{
		memory.ProgramStart: "Start",
	}
	if len(lines) == 0 {
		return labels
	}
	last := lines[len(lines)-1].address

	for _, l := range lines {
		if len(l.data) < opcode.Size {
			continue
		}
		target, ok := Target(opcode.New(l.data[0], l.data[1]))
		if !ok || target < memory.ProgramStart || target > last {
			continue
		}
		if _, exists := labels[target]; !exists {
			labels[target] = fmt.Sprintf("_label_%04x", target)
		}
	}
	return labels
}

func writeLine(w io.Writer, l line, opts Options) error {
	text := "    " + l.code

	var comment string
	if opts.OffsetComments {
		comment = fmt.Sprintf("$%03X", l.address)
	}
	if opts.HexComments {
		if comment != "" {
			comment += " "
		}
		for i, b := range l.data {
			if i > 0 {
				comment += " "
			}
			comment += fmt.Sprintf("%02X", b)
		}
	}

	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w, "%s\n", text)
	} else {
		_, err = fmt.Fprintf(w, "%-32s ; %s\n", text, comment)
	}
	if err != nil {
		return fmt.Errorf("writing line at $%03X: %w", l.address, err)
	}
	return nil
}

// endIndex returns the number of lines to output, dropping trailing zero
// data unless requested.
func endIndex(lines []line, opts Options) int {
	if opts.ZeroBytes {
		return len(lines)
	}

	for i := len(lines) - 1; i >= 0; i-- {
		for _, b := range lines[i].data {
			if b != 0 {
				return i + 1
			}
		}
	}
	return 0
}
