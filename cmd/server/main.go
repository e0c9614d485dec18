package main

import (
	"os"
	"os/signal"
	"syscall"

	"whatsapp-dashboard/internal/api"
	"whatsapp-dashboard/internal/backend"
	"whatsapp-dashboard/internal/config"
	"whatsapp-dashboard/internal/database"
	"whatsapp-dashboard/internal/observability"
	"whatsapp-dashboard/internal/poller"
	"whatsapp-dashboard/internal/state"
	"whatsapp-dashboard/internal/ws"
	"whatsapp-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatalw("failed to open settings database", "error", err)
	}
	settings := database.NewSettingsStore(db, logger)
	settings.Seed(cfg)

	client := backend.NewClient(cfg.BackendBaseURL, settings, cfg.RequestTimeout, logger)
	container := state.NewContainer(client, logger)
	hub := ws.NewHub(logger)

	synchronizer := poller.New(client, cfg.PollInterval, poller.Callbacks{
		OnIncomingMessage: func(msg models.Message) {
			container.Messages.Merge(msg)
			hub.NotifyMessage(msg)
		},
		OnChatUpdate: func(chat models.Chat) {
			container.Chats.Upsert(chat)
			hub.NotifyChat(chat)
		},
	}, logger)

	// Poll only while someone is watching: the first connected browser
	// starts the synchronizer, the last one leaving stops it.
	hub.OnClientCount = func(count int) {
		if count == 0 {
			synchronizer.Stop()
		} else {
			synchronizer.Start()
		}
	}
	go hub.Run()

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	chatHandler := api.NewChatHandler(container)
	messageHandler := api.NewMessageHandler(container)
	customerHandler := api.NewCustomerHandler(container, client)
	orderHandler := api.NewOrderHandler(container, client)
	broadcastHandler := api.NewBroadcastHandler(container)
	quickReplyHandler := api.NewQuickReplyHandler(container)
	dashboardHandler := api.NewDashboardHandler(client, synchronizer)
	settingsHandler := api.NewSettingsHandler(settings)

	r.GET("/ws", func(c *gin.Context) {
		hub.ServeWs(c.Writer, c.Request)
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", dashboardHandler.Health)
		apiGroup.GET("/stats", dashboardHandler.GetStats)
		apiGroup.GET("/analytics", dashboardHandler.GetAnalytics)
		apiGroup.GET("/products", dashboardHandler.GetProducts)

		apiGroup.GET("/chats", chatHandler.GetChats)
		apiGroup.GET("/chats/:phone", chatHandler.GetChat)
		apiGroup.PUT("/chats/:phone", chatHandler.UpdateChat)
		apiGroup.POST("/chats/:phone/labels", chatHandler.AddLabel)
		apiGroup.DELETE("/chats/:phone/labels/:label", chatHandler.RemoveLabel)

		apiGroup.GET("/messages/:phone", messageHandler.GetMessages)
		apiGroup.POST("/messages/send", messageHandler.SendMessage)
		apiGroup.POST("/messages/template", messageHandler.SendTemplate)

		apiGroup.GET("/customers", customerHandler.GetCustomers)
		apiGroup.GET("/customers/labels", customerHandler.GetLabels)
		apiGroup.GET("/customers/segments", customerHandler.GetSegments)
		apiGroup.GET("/customers/export", customerHandler.ExportCustomers)
		apiGroup.GET("/customers/:phone", customerHandler.GetCustomer)
		apiGroup.PUT("/customers/:phone", customerHandler.UpdateCustomer)

		apiGroup.GET("/orders", orderHandler.GetOrders)
		apiGroup.GET("/orders/export", orderHandler.ExportOrders)
		apiGroup.PUT("/orders/:id", orderHandler.UpdateOrder)

		apiGroup.GET("/quick-replies", quickReplyHandler.GetQuickReplies)
		apiGroup.POST("/quick-replies", quickReplyHandler.CreateQuickReply)
		apiGroup.DELETE("/quick-replies/:id", quickReplyHandler.DeleteQuickReply)

		apiGroup.GET("/broadcasts", broadcastHandler.GetBroadcasts)
		apiGroup.POST("/broadcasts", broadcastHandler.CreateBroadcast)
		apiGroup.POST("/broadcasts/estimate", broadcastHandler.Estimate)
		apiGroup.POST("/broadcasts/:id/send", broadcastHandler.SendBroadcast)

		apiGroup.GET("/settings", settingsHandler.GetSettings)
		apiGroup.PUT("/settings", settingsHandler.UpdateSettings)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("server starting", "port", cfg.Port, "backend", cfg.BackendBaseURL)
		errCh <- r.Run(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		logger.Fatalw("server exited", "error", err)
	case sig := <-quit:
		logger.Infow("shutting down", "signal", sig.String())
		synchronizer.Stop()
	}
}
