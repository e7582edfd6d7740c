// eyecatcher - BIP eyecatcher extraction for binary diagnostic dumps.
//
// eyecatcher pulls printable ">BIPnnnn" eyecatcher strings out of IBM ACE
// style dump files and counts how often each one occurs.
package main

import (
	"os"

	"github.com/ccollicutt/eyecatcher/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
