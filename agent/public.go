package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his personal finances: his accounts,
			where his money goes, and how his net worth evolves.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert for outside knowledge: market context,
// financial products, general money questions. It grounds answers with
// search rather than the user's data.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a financial analyst,
		well aware of financial products, institutions, and the latest market news.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial analyst. You can search and find anything related to
			financial institutions, markets, currencies, and products. You leverage Google
			Search to ground your assertions, and you know how to relate the latest news to
			the user's request.
				`}}},
		},
	}
}

// Reports are the callbacks the bookkeeper uses to read the user's data.
// Each renders a markdown report in the requested display currency.
type Reports struct {
	Overview func(currency string) (string, error)
	Cashflow func(currency string) (string, error)
	History  func(currency string) (string, error)
}

// NewBookkeeper creates the expert in charge of the user's own data. Its
// library exposes the engine's reports as callable functions.
func NewBookkeeper(reports Reports) *Expert {
	lib := []Function{
		reportFunc("Overview", `Overview lists the user's accounts grouped by category
		(depository, brokerage, crypto, property, vehicle, creditcard, loan, stock),
		split into assets and liabilities, with the resulting net worth.`, reports.Overview),
		reportFunc("Cashflow", `Cashflow shows where the user's money comes from and goes
		to: income and expenses per transaction category.`, reports.Cashflow),
		reportFunc("History", `History shows the user's net worth over time, merged across
		all accounts, with the overall change.`, reports.History),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's accounts,
		transactions and balance histories, and can compute the relevant figures about the
		user's wealth.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's personal finances.
				You know how to use the Tools to extract relevant information about the user's
				accounts and wealth. You are part of a team of experts; yours is everything
				recorded in the user's data. Pardon their approximative language and figure
				out what they meant.

				Use the available tools to get information about the user's finances:
				  - account categories and net worth (Overview)
				  - income and spending per category (Cashflow)
				  - net worth over time (History)
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// reportFunc wraps a report callback as a model-callable function with a
// single optional "currency" argument.
func reportFunc(name, description string, render func(currency string) (string, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"currency": {
						Type:        genai.TypeString,
						Description: "ISO-4217 display currency for all amounts. USD is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			currency, _ := args["currency"].(string)
			if currency == "" {
				currency = "USD"
			}
			out, err := render(currency)
			if err != nil {
				return &genai.FunctionResponse{
					ID:       id,
					Name:     name,
					Response: map[string]any{"error": err.Error()},
				}
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     name,
				Response: map[string]any{"output": out},
			}
		},
	}
}
