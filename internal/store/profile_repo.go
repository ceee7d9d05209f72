package store

import (
	"context"
	"fmt"
	"time"

	"github.com/smehra/traitlab/ent"
	"github.com/smehra/traitlab/ent/traitprofile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context, learnerID, topic string) (*Profile, error) {
	row, err := r.client.TraitProfile.Query().
		Where(
			traitprofile.LearnerID(learnerID),
			traitprofile.Topic(topic),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile %s/%q: %w", learnerID, topic, err)
	}
	return profileFromRow(row), nil
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	existing, err := r.client.TraitProfile.Query().
		Where(
			traitprofile.LearnerID(p.LearnerID),
			traitprofile.Topic(p.Topic),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("check existing profile: %w", err)
	}

	now := time.Now().UTC()

	if existing == nil {
		_, err = r.client.TraitProfile.Create().
			SetLearnerID(p.LearnerID).
			SetTopic(p.Topic).
			SetTraits(p.Traits).
			SetQuestionCount(p.QuestionCount).
			SetLastUpdated(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		p.LastUpdated = now
		return nil
	}

	_, err = existing.Update().
		SetTraits(p.Traits).
		SetQuestionCount(p.QuestionCount).
		SetLastUpdated(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	p.LastUpdated = now
	return nil
}

func (r *profileRepo) List(ctx context.Context, learnerID string) ([]*Profile, error) {
	rows, err := r.client.TraitProfile.Query().
		Where(traitprofile.LearnerID(learnerID)).
		Order(ent.Asc(traitprofile.FieldTopic)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	// Ascending topic order already places the global profile (empty
	// topic) first.
	out := make([]*Profile, len(rows))
	for i, row := range rows {
		out[i] = profileFromRow(row)
	}
	return out, nil
}

func (r *profileRepo) DeleteLearner(ctx context.Context, learnerID string) (int, error) {
	n, err := r.client.TraitProfile.Delete().
		Where(traitprofile.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete profiles: %w", err)
	}
	return n, nil
}

func profileFromRow(row *ent.TraitProfile) *Profile {
	return &Profile{
		LearnerID:     row.LearnerID,
		Topic:         row.Topic,
		Traits:        row.Traits,
		QuestionCount: row.QuestionCount,
		LastUpdated:   row.LastUpdated,
	}
}
