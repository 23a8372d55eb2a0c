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

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"github.com/swiftamr/swiftamr"
)

// statsCmd represents
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "print index statistics for a reference FASTA",
	Long: `print index statistics for a reference FASTA

Implements the get_stats operation: builds an index from the given
reference and prints its status string. Without -r/--reference (no
index built), prints the literal "No index loaded".

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.Threads)

		refFile := getFlagString(cmd, "reference")
		if refFile == "" {
			fmt.Println((*swiftamr.Index)(nil).Stats())
			return
		}
		refFile = expandPath(refFile)
		checkFileExists(refFile)

		infh, err := xopen.Ropen(refFile)
		checkError(errors.Wrap(err, refFile))
		defer infh.Close()

		data, err := io.ReadAll(infh)
		checkError(errors.Wrap(err, refFile))

		ix := swiftamr.NewIndex()
		ix.StrictTruncation = opt.StrictTruncation
		_, err = ix.BuildFromFASTA(data)
		checkError(errors.Wrap(err, refFile))

		fmt.Println(ix.Stats())
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("reference", "r", "", "reference FASTA of AMR gene sequences")
}
