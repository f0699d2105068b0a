package modifier_test

import (
	"errors"
	"fmt"

	"def-modifier/modifier"
	"def-modifier/primitive"
	"def-modifier/store"
)

type Damage struct {
	Amount int
	Type   string
}

type Weapon struct {
	Name   string
	Damage Damage
}

func Example() {
	weapons := map[string]Weapon{
		"rifle": {Name: "Rifle", Damage: Damage{Amount: 30, Type: "kinetic"}},
	}

	repo := store.NewMemory()
	_ = repo.Add("armory", weapons)

	m := modifier.NewModFile("balance", repo)

	err := m.ApplyModifier(modifier.Definition{
		GUID: "armory",
		Steps: []modifier.Step{
			{Field: "rifle.damage.amount", Value: primitive.Float(40)},
			{Field: "rifle.damage.type", Value: primitive.String("fire")},
		},
	})
	fmt.Println(err)
	fmt.Printf("%+v\n", weapons["rifle"].Damage)

	err = m.ApplyModifier(modifier.Definition{
		GUID:  "armory",
		Field: "rifle.damage[0]",
		Value: primitive.Int(1),
	})
	fmt.Println(errors.Is(err, modifier.ErrTargetResolution))

	// Output:
	// <nil>
	// {Amount:40 Type:fire}
	// true
}
