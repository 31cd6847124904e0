//go:build integration
// +build integration

package tests

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"taskvault/pkg/translator"
)

type IntegrationSuiteBase struct {
	suite.Suite

	client     *mongo.Client
	DB         *mongo.Database
	testDBName string
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder(),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

func (s *IntegrationSuiteBase) SetupSuite() {
	uri := envOrDefault("MONGO_TEST_URI", "mongodb://127.0.0.1:27017")
	database := envOrDefault("MONGO_TEST_DATABASE", envOrDefault("MONGO_DATABASE", "taskmanager")+"_test")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mongodb: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		s.T().Skipf("skipping integration suite: mongodb not reachable: %v", err)
	}

	s.client = client
	s.DB = client.Database(database)
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	// Drop test database to keep local environment clean after integration runs.
	if s.DB != nil && strings.HasSuffix(s.testDBName, "_test") {
		s.Require().NoError(s.DB.Drop(context.Background()))
	}

	if s.client != nil {
		s.Require().NoError(s.client.Disconnect(context.Background()))
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, collection := range []string{"tasks", "users"} {
		s.Require().NoError(s.DB.Collection(collection).Drop(context.Background()))
	}
}

func translationFolder() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "..", "pkg", "translator", "translation"))
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
