package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ParseInstance reads the line-oriented instance format:
//
//	K N
//	K robot base lines      (bx by bz)
//	6 joint limit lines     (min max vmax amax)
//	1 safety line           (tool_clearance safe_distance)
//	N operation lines       (pickx picky pickz placex placey placez process_ms)
//
// Blank lines are ignored; fields are whitespace separated.
func ParseInstance(r io.Reader) (*Instance, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(ErrInputShape, err.Error())
	}
	return ParseLines(lines)
}

// ParseLines parses an instance from pre-split non-empty lines.
func ParseLines(lines []string) (*Instance, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrInputShape, "empty input")
	}

	header := strings.Fields(lines[0])
	if len(header) != 2 {
		return nil, errors.Wrap(ErrInputShape, "header must be exactly K N")
	}
	k, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, errors.Wrapf(ErrInputShape, "bad robot count %q", header[0])
	}
	n, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, errors.Wrapf(ErrInputShape, "bad operation count %q", header[1])
	}
	if k < 1 || n < 1 {
		return nil, errors.Wrapf(ErrInputShape, "K and N must be positive, got K=%d N=%d", k, n)
	}

	want := 1 + k + JointCount + 1 + n
	if len(lines) != want {
		return nil, errors.Wrapf(ErrInputShape, "expected %d non-empty lines, found %d", want, len(lines))
	}

	inst := &Instance{
		Robots:     make([]Robot, k),
		Operations: make([]Operation, n),
	}

	idx := 1
	for i := 0; i < k; i++ {
		f, err := parseFloats(lines[idx+i], 3)
		if err != nil {
			return nil, errors.Wrapf(ErrInputShape, "robot base %d: %v", i+1, err)
		}
		inst.Robots[i] = Robot{ID: RobotID(i), Base: r3.Vector{X: f[0], Y: f[1], Z: f[2]}}
	}

	idx += k
	for i := 0; i < JointCount; i++ {
		f, err := parseFloats(lines[idx+i], 4)
		if err != nil {
			return nil, errors.Wrapf(ErrInputShape, "joint limits %d: %v", i+1, err)
		}
		inst.Joints[i] = JointLimits{
			MinAngle:        f[0],
			MaxAngle:        f[1],
			MaxVelocity:     f[2],
			MaxAcceleration: f[3],
		}
	}

	idx += JointCount
	f, err := parseFloats(lines[idx], 2)
	if err != nil {
		return nil, errors.Wrapf(ErrInputShape, "safety line: %v", err)
	}
	inst.ToolClearance, inst.SafeDistance = f[0], f[1]

	idx++
	for i := 0; i < n; i++ {
		f, err := parseFloats(lines[idx+i], 7)
		if err != nil {
			return nil, errors.Wrapf(ErrInputShape, "operation %d: %v", i+1, err)
		}
		inst.Operations[i] = Operation{
			Pick:        r3.Vector{X: f[0], Y: f[1], Z: f[2]},
			Place:       r3.Vector{X: f[3], Y: f[4], Z: f[5]},
			ProcessTime: int64(f[6]),
		}
	}

	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func parseFloats(line string, want int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, errors.Errorf("expected %d fields, found %d", want, len(fields))
	}
	out := make([]float64, want)
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Errorf("bad number %q", s)
		}
		out[i] = v
	}
	return out, nil
}
