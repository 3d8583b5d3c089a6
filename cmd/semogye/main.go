// Package main provides the semogye command line calculator.
//
// Usage:
//
//	semogye salary 3,000,000 --dependents 2
//	semogye payroll --file roster.json --csv
//	semogye share decode 'https://semogye.com/salary?data=...'
//
// See --help for all available options.
package main

func main() {
	Execute()
}
