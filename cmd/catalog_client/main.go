package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/machinery-catalog/internal/transport/grpc/catalogsvc"
)

var (
	addr    = flag.String("addr", "localhost:50051", "gRPC server address")
	timeout = flag.Duration("timeout", 5*time.Second, "Per-call timeout")
)

const usage = `usage: catalog_client [flags] <command> [args]

commands:
  health                      check the serving status
  list [json-filter]          list products, e.g. '{"categories":["Extruders"],"sort":"price-low"}'
  get <id>                    show one product
  categories                  list categories with counts
  featured                    list featured products
  related <id> [category]     list products related to <id>
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		log.Fatalf("%s failed: %v", flag.Arg(0), err)
	}
}

func run(cmd string, args []string) error {
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if cmd == "health" {
		resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: catalogsvc.ServiceName})
		if err != nil {
			return err
		}
		fmt.Println(resp.GetStatus())
		return nil
	}

	req, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}

	client := catalogsvc.NewClient(conn)
	var resp *structpb.Struct
	switch cmd {
	case "list":
		resp, err = client.ListProducts(ctx, req)
	case "get":
		resp, err = client.GetProduct(ctx, req)
	case "categories":
		resp, err = client.ListCategories(ctx, req)
	case "featured":
		resp, err = client.FeaturedProducts(ctx, req)
	case "related":
		resp, err = client.RelatedProducts(ctx, req)
	}
	if err != nil {
		return err
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func buildRequest(cmd string, args []string) (*structpb.Struct, error) {
	switch cmd {
	case "list":
		req := &structpb.Struct{}
		if len(args) > 0 {
			if err := protojson.Unmarshal([]byte(strings.Join(args, " ")), req); err != nil {
				return nil, fmt.Errorf("invalid filter: %w", err)
			}
		}
		return req, nil
	case "get":
		if len(args) != 1 {
			return nil, fmt.Errorf("get takes exactly one id")
		}
		return structpb.NewStruct(map[string]interface{}{"id": args[0]})
	case "related":
		if len(args) == 0 || len(args) > 2 {
			return nil, fmt.Errorf("related takes an id and an optional category")
		}
		m := map[string]interface{}{"excludeId": args[0]}
		if len(args) == 2 {
			m["category"] = args[1]
		}
		return structpb.NewStruct(m)
	case "categories", "featured":
		return &structpb.Struct{}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
}
