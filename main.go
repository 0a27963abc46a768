package main

import (
	"log"
	"os"
	"time"

	"menubyte/config"
	httpapi "menubyte/internal/api/http"
	"menubyte/internal/service"
	"menubyte/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	store := storage.NewPostgresStore(db)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var cache service.MenuCache
	if os.Getenv("REDIS_HOST") != "" {
		cache = storage.NewRedisMenuCache(config.MustInitRedis(), 10*time.Minute)
	}

	var publisher service.CatalogPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		publisher = storage.NewKafkaCatalogPublisher(config.NewKafkaWriter("catalog-events"))
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost"
	}

	userSvc := service.NewUserService(store, store)
	subscriptionSvc := service.NewSubscriptionService(store, store)
	itemSvc := service.NewItemService(store, store, cache, publisher)
	businessSvc := service.NewBusinessService(store, store, subscriptionSvc, cache, publisher)
	menuSvc := service.NewMenuService(store, cache, service.DefaultQRGenerator{BaseURL: baseURL})
	catalogSvc := service.NewCatalogService(store, store)
	masterSvc := service.NewMasterCatalogService(store, store)

	handler := httpapi.NewHandler(itemSvc, businessSvc, menuSvc, catalogSvc, masterSvc, subscriptionSvc, userSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpapi.StartServer(":"+port, httpapi.NewRouter(handler))
}
