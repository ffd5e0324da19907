package services_test

import (
	"context"
	"fmt"
	"testing"

	"cardcatalog.app/models"
	"cardcatalog.app/pkg/testdb"
	"cardcatalog.app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareCardInstance(t *testing.T) {
	tests := []struct {
		name     string
		input    services.CardInstanceInput
		wantErrs []string
	}{
		{"valid", services.CardInstanceInput{Card: "1", CardPrice: "25", Status: "Available"}, nil},
		{"status defaults", services.CardInstanceInput{Card: "1", CardPrice: "12.50"}, nil},
		{"missing card", services.CardInstanceInput{CardPrice: "5"}, []string{"Card must be specified"}},
		{"invalid card id", services.CardInstanceInput{Card: "abc", CardPrice: "5"}, []string{"Card must be specified"}},
		{"missing price", services.CardInstanceInput{Card: "1"}, []string{"Price must be specified"}},
		{"price not numeric", services.CardInstanceInput{Card: "1", CardPrice: "cheap"}, []string{"Price must be a number"}},
		{"negative price", services.CardInstanceInput{Card: "1", CardPrice: "-3"}, []string{"Price must not be negative"}},
		{"price above column range", services.CardInstanceInput{Card: "1", CardPrice: "100000000000"}, []string{"Price must not exceed 9999999999.99"}},
		{"largest storable price", services.CardInstanceInput{Card: "1", CardPrice: "9999999999.99"}, nil},
		{"bad status", services.CardInstanceInput{Card: "1", CardPrice: "3", Status: "Lost"}, []string{"Status must be Available or Not Available"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, instance, errs := services.PrepareCardInstance(tt.input)
			msgs := make([]string, 0, len(errs))
			for _, e := range errs {
				msgs = append(msgs, e.Message)
			}
			if tt.wantErrs == nil {
				assert.Empty(t, msgs)
				assert.True(t, instance.Status.IsValid())
				return
			}
			assert.ElementsMatch(t, tt.wantErrs, msgs)
		})
	}

	_, instance, errs := services.PrepareCardInstance(services.CardInstanceInput{Card: " 4 ", CardPrice: "12.50", Status: "Not Available"})
	require.Empty(t, errs)
	assert.Equal(t, uint(4), instance.CardID)
	assert.Equal(t, 12.5, instance.CardPrice)
	assert.Equal(t, models.CardInstanceStatusNotAvailable, instance.Status)
}

func TestCardInstanceLifecycle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	cardSvc := services.NewCardService(db)
	svc := services.NewCardInstanceService(db)

	card := models.Card{Title: "Squirtle", Summary: "Turtle"}
	require.NoError(t, cardSvc.CreateCard(ctx, &card))

	_, instance, errs := services.PrepareCardInstance(services.CardInstanceInput{
		Card: fmt.Sprint(card.ID), CardPrice: "15",
	})
	require.Empty(t, errs)
	require.NoError(t, svc.CreateCardInstance(ctx, &instance))
	assert.Equal(t, models.CardInstanceStatusAvailable, instance.Status)

	stored, err := svc.GetCardInstance(ctx, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, "Squirtle", stored.Card.Title)
	assert.Equal(t, 15.0, stored.CardPrice)

	options, err := svc.CardOptions(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.True(t, options[0].Selected)

	update := models.CardInstance{CardID: card.ID, CardPrice: 9.99, Status: models.CardInstanceStatusNotAvailable}
	require.NoError(t, svc.UpdateCardInstance(ctx, instance.ID, &update))
	stored, err = svc.GetCardInstance(ctx, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CardInstanceStatusNotAvailable, stored.Status)
	assert.InDelta(t, 9.99, stored.CardPrice, 0.001)

	unknown := models.CardInstance{CardID: card.ID + 50, CardPrice: 1, Status: models.CardInstanceStatusAvailable}
	assert.ErrorIs(t, svc.CreateCardInstance(ctx, &unknown), services.ErrCardInstanceUnknownCard)
	assert.ErrorIs(t, svc.UpdateCardInstance(ctx, instance.ID, &unknown), services.ErrCardInstanceUnknownCard)
	assert.ErrorIs(t, svc.UpdateCardInstance(ctx, instance.ID+50, &update), services.ErrCardInstanceNotFound)

	deleted, err := svc.DeleteCardInstance(ctx, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.ID, deleted.ID)

	_, err = svc.DeleteCardInstance(ctx, instance.ID)
	assert.ErrorIs(t, err, services.ErrCardInstanceNotFound)

	list, err := svc.ListCardInstances(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
