// SPDX-License-Identifier: MIT
// Command ovmconv reads volumetric meshes in the binary .ovmb format,
// reports their size and optionally writes them back out with different
// encoding options.
//
// Usage:
//
//	ovmconv [--config FILE] [--verbose] INPUT [OUTPUT]
//	ovmconv stat [--jobs N] FILES...
//
// Exit codes:
//
//	0  success
//	1  bad arguments, configuration or file extension
//	3  binary read failure
//	4  ascii read failure (reserved; .ovm is not supported)
//	5  binary write failure
//	6  ascii write failure (reserved)
//	7  input could not be opened
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
