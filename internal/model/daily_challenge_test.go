package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardedMask(t *testing.T) {
	ch := &DailyChallenge{}

	assert.False(t, ch.Rewarded(1))
	assert.False(t, ch.Rewarded(3))

	ch.MarkRewarded(1)
	assert.True(t, ch.Rewarded(1))
	assert.False(t, ch.Rewarded(2))

	ch.MarkRewarded(3)
	assert.True(t, ch.Rewarded(1))
	assert.True(t, ch.Rewarded(3))
	assert.Equal(t, uint8(0b101), ch.RewardedMask)

	// 重复标记不改变状态
	ch.MarkRewarded(1)
	assert.Equal(t, uint8(0b101), ch.RewardedMask)
}

func TestRewardedMaskOutOfRange(t *testing.T) {
	ch := &DailyChallenge{}

	ch.MarkRewarded(0)
	ch.MarkRewarded(9)
	ch.MarkRewarded(-1)
	assert.Equal(t, uint8(0), ch.RewardedMask)

	assert.False(t, ch.Rewarded(0))
	assert.False(t, ch.Rewarded(9))
}
