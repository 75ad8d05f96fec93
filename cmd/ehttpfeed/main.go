// Command ehttpfeed is a demo TCP host for the httpwire parser: it
// accepts connections, feeds incoming bytes to a Parser per connection,
// and exposes Prometheus metrics and a health check over a separate
// admin listener.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
