package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	reuseport "github.com/kavu/go_reuseport"
	"google.golang.org/grpc"

	"github.com/nci/tilebridge/cache"
	"github.com/nci/tilebridge/catalog"
	"github.com/nci/tilebridge/layer"
	"github.com/nci/tilebridge/utils"
	"github.com/nci/tilebridge/worker/bridgeprocess"
	pb "github.com/nci/tilebridge/worker/bridgeservice"
)

var (
	port     = flag.Int("p", 0, "Server listening port. Overrides the config file.")
	confFile = flag.String("c", "", "Server config file path.")
	verbose  = flag.Bool("v", false, "Verbose mode for more server outputs.")
)

var (
	Error *log.Logger
	Info  *log.Logger
)

func init() {
	Error = log.New(os.Stderr, "BRIDGE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(os.Stdout, "BRIDGE: ", log.Ldate|log.Ltime|log.Lshortfile)

	flag.Parse()
}

func main() {
	conf := utils.DefaultConfig()
	if len(*confFile) > 0 {
		var err error
		conf, err = utils.LoadConfig(*confFile)
		if err != nil {
			Error.Printf("Error in loading config file: %v\n", err)
			panic(err)
		}
	}
	if *port > 0 {
		conf.ListenPort = *port
	}
	layer.DefaultWorkers = conf.Workers

	var cat *catalog.Catalog
	if len(conf.PostgresDSN) > 0 {
		var err error
		cat, err = catalog.Open(conf.PostgresDSN)
		if err != nil {
			Error.Printf("Error in opening layer catalog: %v\n", err)
			panic(err)
		}
		defer cat.Close()
	}
	tc := cache.New(conf.MemcacheServers)

	lis, err := reuseport.Listen("tcp", fmt.Sprintf(":%d", conf.ListenPort))
	if err != nil {
		Error.Printf("Failed to listen: %v\n", err)
		panic(err)
	}

	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(conf.MaxGrpcRecvMsgSize),
		grpc.MaxSendMsgSize(conf.MaxGrpcRecvMsgSize),
	)
	pb.RegisterTileBridgeServer(s, bridgeprocess.NewServer(cat, tc, *verbose || conf.Verbose))

	Info.Printf("tilebridge is ready on port %d", conf.ListenPort)
	if err := s.Serve(lis); err != nil {
		Error.Printf("Failed to serve: %v\n", err)
		panic(err)
	}
}
