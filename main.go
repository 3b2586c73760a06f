package main

import "github.com/edgeflare/keyspace/cmd/keyspace"

func main() {
	keyspace.Main()
}
