package server

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"launch_dashboard/internal/domain"
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/transport/callback"
	"launch_dashboard/pkg/errcodes"
	"launch_dashboard/pkg/httpx/reply"
	"launch_dashboard/pkg/httpx/req"
	"launch_dashboard/pkg/rest"
)

//go:embed web/index.html.tmpl
var webFS embed.FS

var pageTemplate = template.Must(template.ParseFS(webFS, "web/index.html.tmpl")) //nolint:gochecknoglobals

type layoutService interface {
	Layout() entity.Layout
}

type callbackRegistry interface {
	Invoke(ctx context.Context, output callback.OutputID, snapshot callback.Snapshot) (entity.Figure, error)
	Callbacks() []callback.Callback
}

type figureRenderer interface {
	Render(figure entity.Figure) ([]byte, error)
}

type DashboardServer struct {
	layoutService layoutService
	callbacks     callbackRegistry
	renderer      figureRenderer
}

func NewDashboardServer(
	layoutService layoutService,
	callbacks callbackRegistry,
	renderer figureRenderer,
) DashboardServer {
	return DashboardServer{
		layoutService: layoutService,
		callbacks:     callbacks,
		renderer:      renderer,
	}
}

type pageData struct {
	Layout   entity.Layout
	Triggers map[string][]string
}

func (s DashboardServer) getIndex(w http.ResponseWriter, r *http.Request) error {
	triggers := make(map[string][]string)
	for _, cb := range newRESTCallbacks(s.callbacks.Callbacks()) {
		for _, control := range cb.Triggers {
			triggers[control] = append(triggers[control], cb.Output)
		}
	}

	var page bytes.Buffer

	data := pageData{Layout: s.layoutService.Layout(), Triggers: triggers}
	if err := pageTemplate.Execute(&page, data); err != nil {
		return fmt.Errorf("pageTemplate.Execute: %w", err)
	}

	reply.HTML(r.Context(), w, page.Bytes())

	return nil
}

func (s DashboardServer) getV1Layout(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTLayout(s.layoutService.Layout(), s.callbacks.Callbacks()))

	return nil
}

func (s DashboardServer) postV1Callback(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CallbackRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if len(request.PayloadRange) == 0 {
		slider := s.layoutService.Layout().PayloadSlider
		request.PayloadRange = []float64{slider.Value[0], slider.Value[1]}
	}

	figure, err := s.invoke(ctx, r.PathValue("output"), request)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTFigure(figure))

	return nil
}

// getChartSVG takes the control values from the query string. Missing values
// fall back to the layout defaults.
func (s DashboardServer) getChartSVG(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	request, err := s.chartRequest(r)
	if err != nil {
		return err
	}

	if err = req.Validate(ctx, &request); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	figure, err := s.invoke(ctx, r.PathValue("output"), request)
	if err != nil {
		return err
	}

	svg, err := s.renderer.Render(figure)
	if err != nil {
		return fmt.Errorf("renderer.Render: %w", err)
	}

	reply.SVG(ctx, w, svg)

	return nil
}

func (s DashboardServer) chartRequest(r *http.Request) (rest.CallbackRequest, error) {
	layout := s.layoutService.Layout()
	query := r.URL.Query()

	request := rest.CallbackRequest{
		Site:         layout.SiteDropdown.Value,
		PayloadRange: []float64{layout.PayloadSlider.Value[0], layout.PayloadSlider.Value[1]},
	}

	if query.Has("site") {
		request.Site = query.Get("site")
	}

	for i, name := range []string{"min", "max"} {
		if !query.Has(name) {
			continue
		}

		bound, err := strconv.ParseFloat(query.Get(name), 64)
		if err != nil {
			return rest.CallbackRequest{}, failure.NewInvalidArgumentError(
				fmt.Errorf("strconv.ParseFloat(%s): %w", name, err).Error(),
				failure.WithCode(errcodes.InvalidPayloadRange),
				failure.WithDescription("Payload bound "+name+" is not a number"),
			)
		}

		request.PayloadRange[i] = bound
	}

	return request, nil
}

func (s DashboardServer) invoke(ctx context.Context, output string, request rest.CallbackRequest) (entity.Figure, error) {
	snapshot, err := newSnapshot(request)
	if err != nil {
		return nil, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newSnapshot: %w", err),
			failure.WithCode(errcodes.InvalidPayloadRange),
		)
	}

	figure, err := s.callbacks.Invoke(ctx, callback.OutputID(output), snapshot)
	if err != nil {
		if domain.HasCode(err, errcodes.UnknownCallbackOutput) {
			return nil, failure.NewNotFoundError(
				err.Error(),
				failure.WithCode(errcodes.UnknownCallbackOutput),
				failure.WithDescription("Unknown output "+strconv.Quote(output)),
			)
		}

		return nil, fmt.Errorf("callbacks.Invoke: %w", err)
	}

	return figure, nil
}
