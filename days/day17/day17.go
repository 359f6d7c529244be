// Package day17 solves "Chronospatial Computer": running a 3-bit program and
// then finding the register value that makes it print itself.
package day17

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jfkriz/AdventOfCode-2024/input"
)

// Errors returned by the solver and the computer.
var (
	ErrMalformed       = errors.New("day17: malformed debugger output")
	ErrOptionViolation = errors.New("day17: invalid option supplied")
	ErrBadOpcode       = errors.New("day17: opcode out of range")
	ErrBadOperand      = errors.New("day17: invalid combo operand")
	ErrStepLimit       = errors.New("day17: step limit exceeded")
	ErrNoQuine         = errors.New("day17: no register value reproduces the program")
)

// Opcodes.
const (
	adv = iota
	bxl
	bst
	jnz
	bxc
	out
	bdv
	cdv
)

// Options configures the computer.
type Options struct {
	// StepLimit caps the instructions one run may execute.
	StepLimit int

	err error
}

// Option is a functional option for NewSolver.
type Option func(*Options)

// DefaultOptions returns a limit of one million instructions per run.
func DefaultOptions() Options {
	return Options{StepLimit: 1_000_000}
}

// WithStepLimit sets the per-run instruction cap. Must be ≥ 1.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: step limit %d", ErrOptionViolation, n)
			return
		}
		o.StepLimit = n
	}
}

// Computer is the three-register machine and its program.
type Computer struct {
	A, B, C int
	Program []int
}

// combo resolves a combo operand: 0-3 are literal, 4-6 name a register.
func (c *Computer) combo(op int) (int, error) {
	switch {
	case op >= 0 && op <= 3:
		return op, nil
	case op == 4:
		return c.A, nil
	case op == 5:
		return c.B, nil
	case op == 6:
		return c.C, nil
	}

	return 0, fmt.Errorf("%w: %d", ErrBadOperand, op)
}

// shift returns A divided by 2 to the power of the combo operand.
func (c *Computer) shift(op int) (int, error) {
	n, err := c.combo(op)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative shift %d", ErrBadOperand, n)
	}

	return c.A >> n, nil
}

// Run executes the program until the instruction pointer leaves it and
// returns everything printed. Registers are updated in place. More than
// limit instructions fail with ErrStepLimit.
func (c *Computer) Run(limit int) ([]int, error) {
	var printed []int
	for ip, steps := 0, 0; ip+1 < len(c.Program); steps++ {
		if steps >= limit {
			return printed, fmt.Errorf("%w: %d", ErrStepLimit, limit)
		}
		op, arg := c.Program[ip], c.Program[ip+1]
		ip += 2

		var err error
		switch op {
		case adv:
			c.A, err = c.shift(arg)
		case bdv:
			c.B, err = c.shift(arg)
		case cdv:
			c.C, err = c.shift(arg)
		case bxl:
			c.B ^= arg
		case bst:
			var v int
			v, err = c.combo(arg)
			c.B = v & 7
		case jnz:
			if c.A != 0 {
				ip = arg
			}
		case bxc:
			c.B ^= c.C
		case out:
			var v int
			v, err = c.combo(arg)
			printed = append(printed, v&7)
		default:
			err = fmt.Errorf("%w: %d at %d", ErrBadOpcode, op, ip-2)
		}
		if err != nil {
			return printed, err
		}
	}

	return printed, nil
}

// Solver holds the computer's initial state.
type Solver struct {
	cfg  Options
	init Computer
}

// NewSolver parses the three register lines and the program line.
func NewSolver(lines []string, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	chunks := input.Chunked(lines)
	if len(chunks) != 2 || len(chunks[0]) != 3 || len(chunks[1]) != 1 {
		return nil, fmt.Errorf("%w: expected registers and a program", ErrMalformed)
	}

	s := &Solver{cfg: cfg}
	regs := []*int{&s.init.A, &s.init.B, &s.init.C}
	for i, l := range chunks[0] {
		var name rune
		if _, err := fmt.Sscanf(strings.TrimSpace(l), "Register %c: %d", &name, regs[i]); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, l, err)
		}
		if name != rune('A'+i) || *regs[i] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, l)
		}
	}

	rest, ok := strings.CutPrefix(strings.TrimSpace(chunks[1][0]), "Program:")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, chunks[1][0])
	}
	prog, err := input.Ints(rest, ",")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i, v := range prog {
		if v < 0 || v > 7 {
			return nil, fmt.Errorf("%w: %d at %d", ErrBadOpcode, v, i)
		}
	}
	s.init.Program = prog

	return s, nil
}

// Output runs a fresh copy of the computer with register A set to a.
func (s *Solver) Output(a int) ([]int, error) {
	c := s.init
	c.A = a

	return c.Run(s.cfg.StepLimit)
}

// PartOne returns the program's output joined with commas.
func (s *Solver) PartOne() (string, error) {
	printed, err := s.Output(s.init.A)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(printed))
	for i, v := range printed {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ","), nil
}

// PartTwo returns the lowest positive value of register A that makes the
// program print itself. It assumes the program consumes A three bits per
// output, so the value is built one octal digit at a time from the last
// output backwards.
func (s *Solver) PartTwo() (int, error) {
	if len(s.init.Program) == 0 {
		return 0, ErrNoQuine
	}

	return s.quine(len(s.init.Program)-1, 0)
}

// quine extends the octal prefix a so the output matches Program[i:].
func (s *Solver) quine(i, a int) (int, error) {
	for k := range 8 {
		cand := a<<3 | k
		if cand == 0 {
			continue
		}
		printed, err := s.Output(cand)
		if err != nil {
			if errors.Is(err, ErrStepLimit) {
				continue
			}
			return 0, err
		}
		if !slices.Equal(printed, s.init.Program[i:]) {
			continue
		}
		if i == 0 {
			return cand, nil
		}
		found, err := s.quine(i-1, cand)
		if err == nil {
			return found, nil
		}
		if !errors.Is(err, ErrNoQuine) {
			return 0, err
		}
	}

	return 0, ErrNoQuine
}
