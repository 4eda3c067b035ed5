// Command nyc311 loads the NYC 311 service-request dataset into memory
// and answers predicate queries against it by full scan.
package main

func main() {
	Execute()
}
