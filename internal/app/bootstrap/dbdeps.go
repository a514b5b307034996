// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// A single Mongo client serves both logical databases: NetworkDB holds
// the social data (users, groups, posts, questions, discussions) and
// ChatDB holds the flat chat log.
type DBDeps struct {
	Client    *mongo.Client
	NetworkDB *mongo.Database
	ChatDB    *mongo.Database
}
