package model_test

import (
	"errors"
	"it-inventory/model"
	"strconv"
	"testing"
)

func TestMapPropagatesError(t *testing.T) {
	expected := errors.New("boom")
	p := model.Map(func(i int) (string, error) {
		return strconv.Itoa(i), nil
	})(model.ErrorProvider[int](expected))

	_, err := p()
	if !errors.Is(err, expected) {
		t.Fatalf("Expected error [%v], got [%v].", expected, err)
	}
}

func TestSliceMap(t *testing.T) {
	p := model.SliceMap(func(i int) (string, error) {
		return strconv.Itoa(i * 2), nil
	})(model.FixedProvider([]int{1, 2, 3}))

	rs, err := p()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rs) != 3 || rs[0] != "2" || rs[2] != "6" {
		t.Fatalf("Unexpected result %v.", rs)
	}
}

func TestFilteredProvider(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }
	positive := func(i int) bool { return i > 0 }
	rs, err := model.FilteredProvider(model.FixedProvider([]int{-2, -1, 0, 1, 2, 4}), even, positive)()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rs) != 2 || rs[0] != 2 || rs[1] != 4 {
		t.Fatalf("Unexpected result %v.", rs)
	}
}

func TestFold(t *testing.T) {
	sum, err := model.Fold(model.FixedProvider([]int{1, 2, 3, 4}), model.FixedProvider(10), func(acc int, i int) (int, error) {
		return acc + i, nil
	})()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sum != 20 {
		t.Fatalf("Expected 20, got %d.", sum)
	}
}

func TestForEachSliceStopsOnError(t *testing.T) {
	visited := 0
	expected := errors.New("stop")
	err := model.ForEachSlice(model.FixedProvider([]int{1, 2, 3}), func(i int) error {
		visited++
		if i == 2 {
			return expected
		}
		return nil
	})
	if !errors.Is(err, expected) {
		t.Fatalf("Expected error [%v], got [%v].", expected, err)
	}
	if visited != 2 {
		t.Fatalf("Expected 2 visits, got %d.", visited)
	}
}
