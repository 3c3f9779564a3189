// This file is part of Glowmask.
//
// Glowmask is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Glowmask is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Glowmask.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// modes are separated by this string in the mode path.
const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments.
type Modes struct {
	// where to print output (help messages etc). defaults to os.Stdout
	Output io.Writer

	// whether Parse() has been called since the last NewMode()
	parsed bool

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *pflag.FlagSet

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// the most recent list of sub-modes specified with AddSubModes()
	subModes []string

	// the series of sub-modes that have been found during subsequent calls
	// to Parse(). never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a string of all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises a new set of arguments for parsing.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = pflag.NewFlagSet("", pflag.ContinueOnError)
	md.flags.SetInterspersed(false)
	md.flags.SortFlags = true
	md.flags.Usage = func() {}
	md.flags.SetOutput(io.Discard)
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp allows a verbose explanation of the mode to be printed with
// the help message.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since either a call
// to NewArgs() or NewMode().
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were added then
	// Mode() should be checked.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the top level layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}

		// unrecognised flags select the default sub-mode if there is one.
		// the flags can then be parsed as part of the sub-mode
		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0])
			return ParseContinue, nil
		}

		return ParseError, err
	}

	// flags parsed in this mode are consumed
	md.argsIdx += len(md.args[md.argsIdx:]) - len(md.flags.Args())

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		mode := md.subModes[0]
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) help() {
	output := md.Output
	if output == nil {
		output = os.Stdout
	}

	usages := md.flags.FlagUsages()
	if usages == "" && len(md.subModes) == 0 {
		io.WriteString(output, "No help available")
		if md.Path() != "" {
			io.WriteString(output, " for "+md.Path())
		}
		io.WriteString(output, "\n")
		return
	}

	if md.Path() != "" {
		io.WriteString(output, "Usage for "+md.Path()+" mode:\n")
	} else {
		io.WriteString(output, "Usage:\n")
	}
	io.WriteString(output, usages)

	if len(md.subModes) > 0 {
		if usages != "" {
			io.WriteString(output, "\n")
		}
		io.WriteString(output, "  available sub-modes: "+strings.Join(md.subModes, ", ")+"\n")
		io.WriteString(output, "    default: "+md.subModes[0]+"\n")
	}

	if md.additionalHelp != "" {
		io.WriteString(output, "\n"+md.additionalHelp+"\n")
	}
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(md.subModes) > 0 && len(args) > 0 && strings.ToUpper(args[0]) == md.Mode() {
		return args[1:]
	}
	return args
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to list of submodes for next parse. The first sub-mode in the
// list is considered to be the default sub-mode. Sub-modes are always upper
// case.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddStringSlice flag for next call to Parse(). The flag can be repeated or
// given a comma separated list.
func (md *Modes) AddStringSlice(name string, value []string, usage string) *[]string {
	return md.flags.StringSlice(name, value, usage)
}

// Visit the flags that have been set on the command line.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *pflag.Flag) {
		fn(f.Name)
	})
}
