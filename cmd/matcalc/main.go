// SPDX-License-Identifier: MIT

// Command matcalc applies one matrix operation to matrix text files.
//
//	matcalc -f input_file
//	matcalc -t input_file [output_file]
//	matcalc -m input_file_1 input_file_2 [output_file]
//	matcalc -d input_file
//	matcalc -a input_file [output_file]
//	matcalc -i input_file [output_file]
package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/matcalc/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer klog.Flush()

	return cli.Run(os.Args[1:], cli.IOStreams{Out: os.Stdout, ErrOut: os.Stderr})
}
