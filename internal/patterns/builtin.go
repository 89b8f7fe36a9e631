package patterns

import "gol-sandbox/internal/core"

func init() {
	Register(Pattern{
		Name:        "r-pentomino",
		Description: "five-cell methuselah; the sandbox's startup shape",
		Generate:    static([]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}),
	})
	Register(Pattern{
		Name:        "block",
		Description: "2x2 still life",
		Generate:    static(Parse("OO", "OO")),
	})
	Register(Pattern{
		Name:        "blinker",
		Description: "period-2 oscillator",
		Generate:    static(Parse("OOO")),
	})
	Register(Pattern{
		Name:        "glider",
		Description: "diagonal spaceship",
		Generate:    static(Parse(".O.", "..O", "OOO")),
	})
	Register(Pattern{
		Name:        "pulsar",
		Description: "period-3 oscillator",
		Generate: static(Parse(
			"..OOO...OOO..",
			".............",
			"O....O.O....O",
			"O....O.O....O",
			"O....O.O....O",
			"..OOO...OOO..",
			".............",
			"..OOO...OOO..",
			"O....O.O....O",
			"O....O.O....O",
			"O....O.O....O",
			".............",
			"..OOO...OOO..",
		)),
	})
	Register(Pattern{
		Name:        "gosper-gun",
		Description: "Gosper glider gun",
		Generate: static(Parse(
			"........................O...........",
			"......................O.O...........",
			"............OO......OO............OO",
			"...........O...O....OO............OO",
			"OO........O.....O...OO..............",
			"OO........O...O.OO....O.O...........",
			"..........O.....O.......O...........",
			"...........O...O....................",
			"............OO......................",
		)),
	})
	Register(Pattern{
		Name:        "none",
		Description: "empty board",
		Generate:    func(Options) []core.Point { return nil },
	})
	Register(Pattern{
		Name:        "random",
		Description: "uniform random fill at the configured density",
		Generate:    Random,
		Sized:       true,
	})
	Register(Pattern{
		Name:        "noise",
		Description: "perlin noise islands above the configured threshold",
		Generate:    Noise,
		Sized:       true,
	})
}
