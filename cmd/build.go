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
	"io"
	"runtime"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"github.com/swiftamr/swiftamr"
)

// buildCmd represents
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "build a k-mer index from a reference FASTA of AMR genes",
	Long: `build a k-mer index from a reference FASTA of AMR genes

This runs the same build_index operation "swiftamr align"/"swiftamr
stats" perform internally, but on its own — useful to validate a
reference database and see its gene count before aligning any
reads against it. The engine holds no persisted on-disk index (by
design, see spec Non-goals), so this command only reports statistics;
it does not write an index file.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.Threads)

		if len(args) != 1 {
			checkError(fmt.Errorf("exactly one reference FASTA file expected, got %d", len(args)))
		}
		refFile := expandPath(args[0])
		checkFileExists(refFile)

		if opt.Verbose {
			log.Infof("reading reference FASTA: %s", refFile)
		}

		infh, err := xopen.Ropen(refFile)
		checkError(errors.Wrap(err, refFile))
		defer infh.Close()

		data, err := io.ReadAll(infh)
		checkError(errors.Wrap(err, refFile))

		ix := swiftamr.NewIndex()
		ix.StrictTruncation = opt.StrictTruncation
		n, err := ix.BuildFromFASTA(data)
		checkError(errors.Wrap(err, refFile))

		fmt.Printf("genes added: %s\n", humanize.Comma(int64(n)))
		if opt.Verbose {
			log.Info(ix.Stats())
		}
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)
}
