package main

import (
	"context"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/redis/go-redis/v9"

	"github.com/seimoney/seimoney-go/adapters/chain"
	"github.com/seimoney/seimoney-go/adapters/events"
	"github.com/seimoney/seimoney-go/adapters/store"
	"github.com/seimoney/seimoney-go/adapters/wallet"
	"github.com/seimoney/seimoney-go/api"
	"github.com/seimoney/seimoney-go/config"
	"github.com/seimoney/seimoney-go/core"
	"github.com/seimoney/seimoney-go/ports"
	"github.com/seimoney/seimoney-go/service"
	transport "github.com/seimoney/seimoney-go/transport/http"
)

func main() {
	cfg, err := config.Load(os.Getenv("SEIMONEY_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	hexKey := strings.TrimPrefix(cfg.Wallet.PrivateKey, "0x")
	if hexKey == "" {
		log.Fatalf("Missing required configuration: SEIMONEY_WALLET_PRIVATE_KEY")
	}

	privateKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		log.Fatalf("Invalid wallet private key: %v", err)
	}

	signer, err := wallet.NewKeySigner(hexKey)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}

	ethClient, err := ethclient.Dial(cfg.Chain.RPCURL)
	if err != nil {
		log.Fatalf("Failed to connect to RPC endpoint: %v", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(privateKey, big.NewInt(cfg.Chain.ChainID))
	if err != nil {
		log.Fatalf("Failed to create transactor: %v", err)
	}

	custody := chain.NewCustodyGateway(ethClient, opts, common.HexToAddress(cfg.Chain.CustodyAddress))
	savings := chain.NewSavingsGateway(ethClient, opts)

	apiClient, err := api.NewClient(cfg.API.URL, nil)
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}
	apiClient.BindWallet(signer)

	logger := watermill.NewStdLogger(false, false)

	var publisher message.Publisher
	var tokens ports.TokenStore
	if cfg.Redis.URL != "" {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(redisOpts)

		publisher, err = redisstream.NewPublisher(
			redisstream.PublisherConfig{Client: redisClient},
			logger,
		)
		if err != nil {
			log.Fatalf("Failed to create Redis publisher: %v", err)
		}

		tokens = store.NewRedisStore(redisClient, signer.Address().Hex())
	} else {
		publisher = gochannel.NewGoChannel(gochannel.Config{}, logger)
		tokens = store.NewMemoryStore()
	}

	eventPub := events.NewWatermillPublisher(publisher)

	sessions := core.NewSessionStore()
	sessions.SetAddress(signer.Address())

	authService := service.NewAuthService(sessions, signer, apiClient, custody, savings, tokens, eventPub)
	authService.InitAuth(context.Background())

	// Setup Gin router
	router := transport.SetupRouter(authService, sessions, apiClient)

	// Start server
	if err := router.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
