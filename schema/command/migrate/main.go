package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/openrelief/relief-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("relief")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.HelpRequest{},
		&schema.Response{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.HelpRequest{}).
		AddIndex("idx_help_requests_status_category", "status", "category").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Response{}).
		AddIndex("idx_responses_request_id", "request_id").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Response{}).
		AddForeignKey("request_id", "help_requests(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
