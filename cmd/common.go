// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	logging "github.com/shenwei356/go-logging"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("swiftamr")

// Options holds the global, cross-command flags.
type Options struct {
	Threads          int
	Verbose          bool
	StrictTruncation bool
}

func getOptions(cmd *cobra.Command) *Options {
	return &Options{
		Threads:          getFlagPositiveInt(cmd, "threads"),
		Verbose:          getFlagBool(cmd, "verbose"),
		StrictTruncation: getFlagBool(cmd, "strict-truncation"),
	}
}

// checkError prints err and exits the process, matching the
// fail-fast idiom the teacher's CLI uses throughout: the engine
// itself never panics or os.Exit()s, only the command layer does.
func checkError(err error) {
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(-1)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	value, err := cmd.Flags().GetString(flag)
	checkError(err)
	return value
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	value, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return value
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	value, err := cmd.Flags().GetInt(flag)
	checkError(err)
	return value
}

func getFlagPositiveInt(cmd *cobra.Command, flag string) int {
	value := getFlagInt(cmd, flag)
	if value <= 0 {
		checkError(errors.Wrapf(fmt.Errorf("value should be positive: %d", value), "flag --%s", flag))
	}
	return value
}

// expandPath expands a leading ~ the way a user typing a path on the
// command line expects, for -o/--out-file and -r/--reference.
func expandPath(path string) string {
	if path == "" || path == "-" {
		return path
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// checkFileExists fails fast with a clear error instead of letting a
// missing reference/reads file surface as an opaque os.Open error deep
// inside parsing.
func checkFileExists(file string) {
	if file == "-" {
		return
	}
	ok, err := pathutil.Exists(file)
	checkError(errors.Wrap(err, file))
	if !ok {
		checkError(fmt.Errorf("file does not exist: %s", file))
	}
}
