package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/avoronov/authkeeper/internal/client/cli"
	"github.com/avoronov/authkeeper/internal/client/client"
)

func main() {

	addr := flag.String("a", "localhost:50051", "server gRPC endpoint")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-a addr] register|login|verify\n", os.Args[0])
		os.Exit(2)
	}

	c, err := client.NewGRPCClient(*addr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer c.Close()

	app := cli.NewApp(c, os.Stdin, os.Stdout)

	if err := app.RunCommand(context.Background(), flag.Arg(0)); err != nil {
		log.Fatalf("%v", err)
	}
}
