package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/roadmap/internal/item/internal/domain"
	"github.com/ecodeclub/roadmap/internal/item/internal/repository/dao"
)

var (
	ErrItemNotFound = errors.New("条目不存在")
	ErrVoteNotFound = dao.ErrDeleteVoteNotFound
)

//go:generate mockgen -source=./item.go -package=repomocks -destination=mocks/item.mock.go ItemRepository
type ItemRepository interface {
	CreateSubmission(ctx context.Context, item domain.Item) (domain.Item, error)
	List(ctx context.Context, offset, limit int) ([]domain.Item, error)
	PendingCount(ctx context.Context) (int64, error)
	Info(ctx context.Context, id int64) (domain.Item, error)
	FindBySN(ctx context.Context, sn string) (domain.Item, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ItemStatus, causerUid int64) error
	VoteToggle(ctx context.Context, itemId, uid int64) (bool, error)
	Votes(ctx context.Context, itemId int64, offset, limit int) ([]domain.Vote, error)
	DeleteVote(ctx context.Context, voteId int64) error
	Activities(ctx context.Context, itemId int64, offset, limit int) ([]domain.Activity, error)
}

type itemRepository struct {
	dao dao.ItemDAO
}

func NewItemRepository(d dao.ItemDAO) ItemRepository {
	return &itemRepository{
		dao: d,
	}
}

func (r *itemRepository) CreateSubmission(ctx context.Context, item domain.Item) (domain.Item, error) {
	entity, err := r.dao.CreateSubmission(ctx, r.toEntity(item))
	if err != nil {
		return domain.Item{}, err
	}
	return r.toDomain(entity), nil
}

func (r *itemRepository) List(ctx context.Context, offset, limit int) ([]domain.Item, error) {
	items, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.Item) domain.Item {
		return r.toDomain(src)
	}), nil
}

func (r *itemRepository) PendingCount(ctx context.Context) (int64, error) {
	return r.dao.PendingCount(ctx)
}

func (r *itemRepository) Info(ctx context.Context, id int64) (domain.Item, error) {
	item, err := r.dao.Info(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Item{}, ErrItemNotFound
	}
	return r.toDomain(item), err
}

func (r *itemRepository) FindBySN(ctx context.Context, sn string) (domain.Item, error) {
	item, err := r.dao.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Item{}, ErrItemNotFound
	}
	return r.toDomain(item), err
}

func (r *itemRepository) UpdateStatus(ctx context.Context, id int64,
	status domain.ItemStatus, causerUid int64) error {
	err := r.dao.UpdateStatus(ctx, id, int32(status), causerUid)
	if errors.Is(err, dao.ErrDataNotFound) {
		return ErrItemNotFound
	}
	return err
}

func (r *itemRepository) VoteToggle(ctx context.Context, itemId, uid int64) (bool, error) {
	return r.dao.VoteToggle(ctx, itemId, uid)
}

func (r *itemRepository) Votes(ctx context.Context, itemId int64, offset, limit int) ([]domain.Vote, error) {
	votes, err := r.dao.ListVotes(ctx, itemId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(votes, func(idx int, src dao.Vote) domain.Vote {
		return domain.Vote{
			ID:     src.Id,
			ItemID: src.ItemId,
			Uid:    src.Uid,
			Ctime:  time.UnixMilli(src.Ctime),
		}
	}), nil
}

func (r *itemRepository) DeleteVote(ctx context.Context, voteId int64) error {
	return r.dao.DeleteVote(ctx, voteId)
}

func (r *itemRepository) Activities(ctx context.Context, itemId int64, offset, limit int) ([]domain.Activity, error) {
	activities, err := r.dao.ListActivities(ctx, itemId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(activities, func(idx int, src dao.Activity) domain.Activity {
		return domain.Activity{
			ID:        src.Id,
			ItemID:    src.ItemId,
			CauserUid: src.CauserUid,
			Action:    domain.ActivityAction(src.Action),
			Detail:    src.Detail,
			Ctime:     time.UnixMilli(src.Ctime),
		}
	}), nil
}

func (r *itemRepository) toEntity(item domain.Item) dao.Item {
	return dao.Item{
		Id:      item.ID,
		SN:      item.SN,
		Title:   item.Title,
		Content: item.Content,
		Uid: sql.NullInt64{
			Int64: item.Uid,
			Valid: item.Uid != 0,
		},
		Status:  int32(item.Status),
		VoteCnt: item.VoteCnt,
	}
}

func (r *itemRepository) toDomain(item dao.Item) domain.Item {
	return domain.Item{
		ID:      item.Id,
		SN:      item.SN,
		Title:   item.Title,
		Content: item.Content,
		Uid:     item.Uid.Int64,
		Status:  domain.ItemStatus(item.Status),
		VoteCnt: item.VoteCnt,
		Ctime:   time.UnixMilli(item.Ctime),
		Utime:   time.UnixMilli(item.Utime),
	}
}
