package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"farmtech/internal/model"
	"farmtech/internal/service"
	"farmtech/internal/utils"
)

// Session runs the interactive menu loop. All user-facing text goes to out;
// lifecycle events go to the structured logger.
type Session struct {
	plots   *service.PlotService
	prompt  *prompter
	out     io.Writer
	log     zerolog.Logger
	appName string
}

func NewSession(plots *service.PlotService, log zerolog.Logger, in io.Reader, out io.Writer, appName string) *Session {
	return &Session{
		plots:   plots,
		prompt:  newPrompter(in, out),
		out:     out,
		log:     log,
		appName: appName,
	}
}

// Run loops until the user picks Exit or the input stream closes.
func (s *Session) Run() error {
	for {
		s.printMenu()

		choice, err := s.prompt.readLine("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd := parseCommand(choice)
		s.log.Debug().Str("choice", choice).Str("command", cmd.label()).Msg("menu dispatch")

		switch cmd {
		case commandAddPlot:
			err = s.addPlot()
		case commandListPlots:
			err = s.listPlots()
		case commandUpdatePlot:
			err = s.updatePlot()
		case commandDeletePlot:
			err = s.deletePlot()
		case commandComputeInput:
			err = s.computeInput()
		case commandExit:
			fmt.Fprintf(s.out, "\nThank you for using %s. See you soon!\n", s.appName)
			return nil
		default:
			fmt.Fprintln(s.out, "\n> Invalid option. Try again.")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (s *Session) printMenu() {
	border := strings.Repeat("=", 40)
	fmt.Fprintf(s.out, "\n%s\n  %s\n%s\n", border, s.appName, border)
	for _, cmd := range menuOrder {
		fmt.Fprintf(s.out, "%d. %s\n", int(cmd), cmd.label())
	}
}

func (s *Session) addPlot() error {
	fmt.Fprintln(s.out, "\n--- Add New Plot ---")

	crop, err := s.promptCrop()
	if err != nil || crop == nil {
		return err
	}

	s.plots.AddPlot(crop)
	s.log.Info().Str("crop", string(crop.Name())).Float64("area_m2", crop.Area()).Msg("plot added")
	fmt.Fprintln(s.out, "\n> Plot added successfully!")
	return nil
}

func (s *Session) listPlots() error {
	crops := s.plots.ListPlots()
	if len(crops) == 0 {
		fmt.Fprintln(s.out, "\n> No plots registered.")
		return nil
	}

	fmt.Fprintln(s.out, "\n--- Registered Plots ---")
	for i, crop := range crops {
		fmt.Fprintf(s.out, "Index %d: %s\n", i, crop)
	}
	return nil
}

func (s *Session) updatePlot() error {
	fmt.Fprintln(s.out, "\n--- Update Plot ---")

	index, ok, err := s.selectIndex()
	if err != nil || !ok {
		return err
	}

	fmt.Fprintf(s.out, "\nUpdating index %d. Please enter the new values.\n", index)
	crop, err := s.promptCrop()
	if err != nil || crop == nil {
		return err
	}

	if err := s.plots.UpdatePlot(index, crop); err != nil {
		fmt.Fprintln(s.out, "> Invalid index.")
		return nil
	}

	s.log.Info().Int("index", index).Str("crop", string(crop.Name())).Msg("plot updated")
	fmt.Fprintf(s.out, "\n> Plot at index %d updated successfully!\n", index)
	return nil
}

func (s *Session) deletePlot() error {
	fmt.Fprintln(s.out, "\n--- Delete Plot ---")

	index, ok, err := s.selectIndex()
	if err != nil || !ok {
		return err
	}

	if err := s.plots.DeletePlot(index); err != nil {
		fmt.Fprintln(s.out, "> Invalid index.")
		return nil
	}

	s.log.Info().Int("index", index).Msg("plot removed")
	fmt.Fprintf(s.out, "\n> Plot at index %d removed successfully!\n", index)
	return nil
}

func (s *Session) computeInput() error {
	fmt.Fprintln(s.out, "\n--- Input Volume Calculation ---")

	index, ok, err := s.selectIndex()
	if err != nil || !ok {
		return err
	}

	crop, err := s.plots.GetPlot(index)
	if err != nil {
		fmt.Fprintln(s.out, "> Invalid index.")
		return nil
	}

	product, err := s.prompt.readLine("Which product will be applied? ")
	if err != nil {
		return err
	}

	for {
		rows, err := s.prompt.readInt("How many rows does the field have? ")
		if err != nil {
			return err
		}
		rate, err := s.prompt.readFloat("How many mL per meter do you want to apply? ")
		if err != nil {
			return err
		}

		rec, err := s.plots.ApplyInput(index, service.ApplyInputParams{
			Product:        product,
			Rows:           rows,
			RateMlPerMeter: rate,
		})
		if err != nil {
			if errors.Is(err, service.ErrInvalidParameter) {
				fmt.Fprintln(s.out, "> Rows must be at least 1 and the rate non-negative. Try again.")
				continue
			}
			fmt.Fprintln(s.out, "> Invalid index.")
			return nil
		}

		s.log.Info().
			Int("index", index).
			Str("product", rec.Product).
			Float64("liters", rec.VolumeLiters).
			Msg("input volume computed")
		fmt.Fprintf(s.out, "\n> The %s plot needs %.2f liters of %s.\n", crop.Name(), rec.VolumeLiters, rec.Product)
		fmt.Fprintln(s.out, "> Input record saved on the plot.")
		return nil
	}
}

// promptCrop collects the crop type and its dimensions. A nil crop with a
// nil error means the operation was aborted with a message already printed.
func (s *Session) promptCrop() (model.Crop, error) {
	raw, err := s.prompt.readLine("Crop type (coffee or corn): ")
	if err != nil {
		return nil, err
	}

	cropType, err := model.ParseCropType(utils.NormalizeCropType(raw))
	if err != nil {
		fmt.Fprintln(s.out, "\n> Unknown crop type. Try again.")
		return nil, nil
	}

	switch cropType {
	case model.CropTypeCoffee:
		for {
			length, err := s.prompt.readFloat("Row length (m): ")
			if err != nil {
				return nil, err
			}
			width, err := s.prompt.readFloat("Plot width (m): ")
			if err != nil {
				return nil, err
			}
			crop, err := model.NewRowCrop(length, width)
			if err != nil {
				fmt.Fprintln(s.out, "> Dimensions must be positive. Try again.")
				continue
			}
			return crop, nil
		}
	case model.CropTypeCorn:
		for {
			radius, err := s.prompt.readFloat("Pivot radius (m): ")
			if err != nil {
				return nil, err
			}
			crop, err := model.NewCircularCrop(radius)
			if err != nil {
				fmt.Fprintln(s.out, "> Dimensions must be positive. Try again.")
				continue
			}
			return crop, nil
		}
	}
	return nil, nil
}

// selectIndex lists the plots and asks for an index. ok reports whether a
// valid index was chosen; aborts already printed their message.
func (s *Session) selectIndex() (index int, ok bool, err error) {
	if s.plots.PlotCount() == 0 {
		fmt.Fprintln(s.out, "\n> No plots registered to select.")
		return 0, false, nil
	}

	if err := s.listPlots(); err != nil {
		return 0, false, err
	}

	raw, err := s.prompt.readLine("\nEnter the desired index: ")
	if err != nil {
		return 0, false, err
	}

	index, convErr := strconv.Atoi(raw)
	if convErr != nil {
		fmt.Fprintln(s.out, "> Invalid entry. Type a whole number.")
		return 0, false, nil
	}

	if _, err := s.plots.GetPlot(index); err != nil {
		fmt.Fprintln(s.out, "> Invalid index.")
		return 0, false, nil
	}
	return index, true, nil
}
