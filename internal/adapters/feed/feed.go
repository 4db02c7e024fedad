package feed

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

const channelPrefix = "attendance:"

// Feed streams attendance marks over redis pub/sub, one channel per
// civil date, so open admin reports update without polling.
type Feed struct {
	logger *types.Logger
	rdb    *redis.Client
}

func New(logger *types.Logger, rdb *redis.Client) *Feed {
	return &Feed{
		logger: logger,
		rdb:    rdb,
	}
}

func (f *Feed) PublishMark(ctx context.Context, record entity.Attendance) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return f.rdb.Publish(ctx, channelPrefix+record.Date, data).Err()
}

// Subscribe starts a listener for one date and returns its cancellation
// handle. The returned cancel is the single owner of the subscription;
// calling it stops the goroutine and closes the underlying channel.
func (f *Feed) Subscribe(date string, fn func(entity.Attendance)) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	sub := f.rdb.Subscribe(ctx, channelPrefix+date)

	go func() {
		defer func() {
			if err := sub.Close(); err != nil {
				f.logger.Errorf("failed to close feed subscription for %s: %v", date, err)
			}
		}()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var record entity.Attendance
				if err := json.Unmarshal([]byte(msg.Payload), &record); err != nil {
					f.logger.Errorf("malformed feed payload on %s: %v", msg.Channel, err)
					continue
				}
				fn(record)
			}
		}
	}()

	return cancel
}
