package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-01"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2026-08-01") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		cacheTTL,
		kafkaAddr, kafkaTopic, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}

	// PostgreSQL
	if pgHost != "localhost" || pgPort != 5432 || pgUser != "user" || pgPassword != "password" || pgDB != "marketplace" ||
		pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPassword != "" ||
		redisPoolSize != 10 || redisMinIdleConns != 2 || cacheTTL != 300 {
		t.Errorf("unexpected redis config")
	}

	// Kafka disabled by default
	if kafkaAddr != "" || kafkaTopic != "marketplace-events" {
		t.Errorf("unexpected kafka config: %v/%v", kafkaAddr, kafkaTopic)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("LISTING_CACHE_TTL_SECOND", "120")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "market")

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		cacheTTL,
		kafkaAddr, kafkaTopic, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if pgHost != "pg.example.com" || pgPort != 5433 || pgUser != "admin" || pgPassword != "secret" || pgDB != "mydb" ||
		pgMaxOpenConns != 20 || pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if redisHost != "redis.example.com" || redisPort != 6380 || redisDB != 2 || redisPassword != "redispass" ||
		redisPoolSize != 15 || redisMinIdleConns != 5 || cacheTTL != 120 {
		t.Errorf("unexpected redis config")
	}
	if kafkaAddr != "kafka.example.com:9092" || kafkaTopic != "market" {
		t.Errorf("unexpected kafka config")
	}
}

func TestParseConfig_InvalidPort(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for invalid POSTGRES_PORT")
	}
}

// ------------------ Full integration test ------------------

// postJSON posts a body and decodes the JSON response into out.
func postJSON(t *testing.T, url string, body any, out any, wantStatus int) {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var raw bytes.Buffer
		raw.ReadFrom(resp.Body)
		t.Fatalf("POST %s: expected status %d, got %d: %s", url, wantStatus, resp.StatusCode, raw.String())
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatal(err)
		}
	}
}

// putJSON sends a PUT with a JSON body and decodes the response into out.
func putJSON(t *testing.T, url string, body any, out any, wantStatus int) {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var raw bytes.Buffer
		raw.ReadFrom(resp.Body)
		t.Fatalf("PUT %s: expected status %d, got %d: %s", url, wantStatus, resp.StatusCode, raw.String())
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRun_MarketplaceFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based integration test in short mode")
	}

	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx,
			"127.0.0.1", "8086", "debug",
			pgHost, pgPort.Int(), "user", "password", "testdb",
			5, 2,
			redisHost, redisPort.Int(), 0, "", 10, 2,
			60,
			"", "marketplace-events", // Kafka disabled
		)
	}()

	base := "http://127.0.0.1:8086"

	// Wait for the server to come up
	serverUp := false
	for i := 0; i < 50; i++ {
		resp, err := http.Get(base + "/categories")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				serverUp = true
				break
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	if !serverUp {
		t.Fatal("server did not come up")
	}

	// Seller and buyer
	var seller, buyer map[string]any
	postJSON(t, base+"/users", map[string]any{
		"username":      "seller",
		"email":         "seller@example.com",
		"password":      "s3cret",
		"date_of_birth": "1990-01-01T00:00:00Z",
	}, &seller, http.StatusCreated)
	postJSON(t, base+"/users", map[string]any{
		"username":      "buyer",
		"email":         "buyer@example.com",
		"password":      "s3cret",
		"date_of_birth": "1992-02-02T00:00:00Z",
	}, &buyer, http.StatusCreated)

	sellerID := int64(seller["id"].(float64))
	buyerID := int64(buyer["id"].(float64))

	// Listing in the first seeded category
	var listing map[string]any
	postJSON(t, base+"/listings", map[string]any{
		"user_id":      sellerID,
		"category_id":  1,
		"title":        "Mountain bike",
		"listing_type": "selling",
		"price":        250.0,
		"region":       "Leiden",
		"description":  "Barely used",
	}, &listing, http.StatusCreated)
	listingID := int64(listing["id"].(float64))

	// Bid from the buyer
	var bid map[string]any
	postJSON(t, fmt.Sprintf("%s/listings/%d/bids", base, listingID), map[string]any{
		"user_id": buyerID,
		"amount":  260.0,
	}, &bid, http.StatusCreated)
	bidID := int64(bid["id"].(float64))

	// A lower bid must be rejected
	postJSON(t, fmt.Sprintf("%s/listings/%d/bids", base, listingID), map[string]any{
		"user_id": buyerID,
		"amount":  255.0,
	}, nil, http.StatusConflict)

	// Transaction for the winning bid
	var txn map[string]any
	postJSON(t, base+"/transactions", map[string]any{
		"user_id":    buyerID,
		"listing_id": listingID,
		"amount":     260.0,
		"status":     "pending",
		"bid_id":     bidID,
	}, &txn, http.StatusCreated)
	txnID := int64(txn["id"].(float64))

	// Settle the transaction; listing becomes sold
	putJSON(t, fmt.Sprintf("%s/transactions/%d/status", base, txnID), map[string]any{
		"status": "completed",
	}, &txn, http.StatusOK)
	if txn["status"] != "completed" {
		t.Fatalf("expected completed transaction, got %v", txn["status"])
	}

	resp, err := http.Get(fmt.Sprintf("%s/listings/%d", base, listingID))
	if err != nil {
		t.Fatal(err)
	}
	var soldListing map[string]any
	json.NewDecoder(resp.Body).Decode(&soldListing)
	resp.Body.Close()
	if soldListing["status"] != "sold" {
		t.Fatalf("expected sold listing, got %v", soldListing["status"])
	}

	// Payment for the transaction
	var payment map[string]any
	postJSON(t, base+"/payments", map[string]any{
		"transaction_id": txnID,
		"listing_id":     listingID,
		"payment_method": "card",
		"amount":         260.0,
	}, &payment, http.StatusCreated)
	paymentID := int64(payment["id"].(float64))

	// Refund before settlement is rejected
	postJSON(t, fmt.Sprintf("%s/payments/%d/refund", base, paymentID), nil, nil, http.StatusConflict)

	// Settle the payment, then request a refund
	putJSON(t, fmt.Sprintf("%s/payments/%d/status", base, paymentID), map[string]any{
		"status": "completed",
	}, &payment, http.StatusOK)

	postJSON(t, fmt.Sprintf("%s/payments/%d/refund", base, paymentID), nil, &payment, http.StatusOK)
	if payment["payment_status"] != "refund_requested" {
		t.Fatalf("expected refund_requested, got %v", payment["payment_status"])
	}

	// Buyer reviews the seller
	var review map[string]any
	postJSON(t, base+"/reviews", map[string]any{
		"reviewer_id":      buyerID,
		"reviewed_user_id": sellerID,
		"listing_id":       listingID,
		"rating":           5,
		"review_text":      "Great seller",
	}, &review, http.StatusCreated)

	resp, err = http.Get(fmt.Sprintf("%s/users/%d/rating", base, sellerID))
	if err != nil {
		t.Fatal(err)
	}
	var rating map[string]any
	json.NewDecoder(resp.Body).Decode(&rating)
	resp.Body.Close()
	if rating["total_ratings"].(float64) != 1 || rating["average_rating"].(float64) != 5 {
		t.Fatalf("unexpected seller rating: %v", rating)
	}

	// Seller's bid notification exists
	resp, err = http.Get(fmt.Sprintf("%s/users/%d/notifications", base, sellerID))
	if err != nil {
		t.Fatal(err)
	}
	var notifications []map[string]any
	json.NewDecoder(resp.Body).Decode(&notifications)
	resp.Body.Close()
	if len(notifications) == 0 {
		t.Fatal("expected seller notifications")
	}

	// Shut the server down
	cancel()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to stop cleanly, got error: %v", err)
		}
	}
}
