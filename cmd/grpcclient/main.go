// Package main implements very simple grpc client that can be used for testing ghdashboard grpc server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"

	appGrpc "github.com/m-zajac/ghdashboard/internal/api/grpc"
)

var (
	serverAddr = flag.String("s", "localhost:9090", "The server address in the format of host:port")
	username   = flag.String("u", "octocat", "Github username")
	repoID     = flag.Int64("r", 0, "Id of repository to expand, 0 to skip")
)

func main() {
	flag.Parse()

	conn, err := grpc.Dial(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewDashboardClient(conn)

	ctx := context.Background()
	session, err := client.CreateSession(ctx)
	if err != nil {
		log.Fatalf("creating session: %v", err)
	}

	state, err := client.Search(ctx, session, *username)
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}
	if *repoID != 0 {
		state, err = client.ToggleRepository(ctx, session, *repoID)
		if err != nil {
			log.Fatalf("server response error: %v", err)
		}
	}

	out, err := protojson.MarshalOptions{Multiline: true}.Marshal(state)
	if err != nil {
		log.Fatalf("marshalling state: %v", err)
	}
	fmt.Println(string(out))
}
