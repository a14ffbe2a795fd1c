package schedulerRepo

import (
	"context"
	"fmt"

	"prescripto/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSchedulerRepo implements SchedulerRepository on top of MongoDB
// multi-document transactions.
type MongoSchedulerRepo struct {
	doctorColl *mongo.Collection
	apptColl   *mongo.Collection
}

// NewMongoSchedulerRepo creates a new instance of SchedulerRepository using MongoDB.
func NewMongoSchedulerRepo() SchedulerRepository {
	db := database.DB()
	return &MongoSchedulerRepo{
		doctorColl: db.Collection("doctors"),
		apptColl:   db.Collection("appointments"),
	}
}

// withTransaction runs txnFn inside a session transaction, aborting on error.
func (repo *MongoSchedulerRepo) withTransaction(ctx context.Context, txnFn func(sc mongo.SessionContext) error) error {
	client := repo.doctorColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
