package oujrand_test

import (
	"fmt"

	"github.com/ouijasearch/ouija/pkg/oujrand"
)

// ExampleNew demonstrates deriving independent streams for the same seed.
func ExampleNew() {
	seed := "1OGB5WT9"

	shopAnte2 := oujrand.New(seed, "sho2")
	arcanaAnte1 := oujrand.New(seed, "ar11")

	fmt.Println(shopAnte2.Key())
	fmt.Println(arcanaAnte1.Key())
	// Output:
	// sho2
	// ar11
}

// ExampleStream_Shuffle demonstrates deterministic shuffling of a shop slot order.
func ExampleStream_Shuffle() {
	s := oujrand.New("1OGB5WT9", "sho1")

	slots := []string{"slot0", "slot1", "slot2", "slot3"}
	s.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})

	fmt.Println(len(slots))
	// Output:
	// 4
}
