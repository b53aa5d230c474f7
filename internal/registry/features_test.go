package registry

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/MikeMC777/caja-pos/internal/apperr"
	"github.com/MikeMC777/caja-pos/internal/memstore"
	"github.com/MikeMC777/caja-pos/internal/money"
	"github.com/MikeMC777/caja-pos/internal/order"
	"github.com/MikeMC777/caja-pos/internal/payment"
	"github.com/MikeMC777/caja-pos/internal/register"
)

type registerTestContext struct {
	svc    *Service
	last   *order.Order
	closed *CloseResult
	err    error
}

func (c *registerTestContext) reset() {
	st := memstore.New()
	c.svc = New(st.Registers(), st.Orders())
	c.last = nil
	c.closed = nil
	c.err = nil
}

func (c *registerTestContext) theRegisterIsOpenedWith(amount int) error {
	_, err := c.svc.OpenRegister(context.Background(), register.OpenRequest{OpeningAmount: int64(amount)})
	return err
}

func (c *registerTestContext) iOpenTheRegisterWith(amount int) error {
	_, c.err = c.svc.OpenRegister(context.Background(), register.OpenRequest{OpeningAmount: int64(amount)})
	return nil
}

func (c *registerTestContext) create(ref string, qty, unit, paid int) (*order.Order, error) {
	return c.svc.CreateOrder(context.Background(), NewOrder{
		ReferenceName: ref,
		Items:         []order.Item{{ProductID: 1, UnitPrice: money.Money(unit), Quantity: qty}},
		Method:        payment.MethodCash,
		AmountPaid:    money.Money(paid),
	})
}

func (c *registerTestContext) anOrder(ref string, qty, unit, paid int) error {
	o, err := c.create(ref, qty, unit, paid)
	if err != nil {
		return err
	}
	c.last = o
	return nil
}

func (c *registerTestContext) iCreateAnOrder(ref string, qty, unit, paid int) error {
	o, err := c.create(ref, qty, unit, paid)
	c.err = err
	if err == nil {
		c.last = o
	}
	return nil
}

func (c *registerTestContext) theOrderIsAcceptedWithNumber(n int) error {
	if c.err != nil {
		return fmt.Errorf("expected order to be accepted, got %v", c.err)
	}
	if c.last.NumberInRegister != n {
		return fmt.Errorf("expected number %d, got %d", n, c.last.NumberInRegister)
	}
	return nil
}

func (c *registerTestContext) theOrderTotalIs(total int) error {
	if c.last.Total != money.Money(total) {
		return fmt.Errorf("expected total %d, got %d", total, c.last.Total)
	}
	return nil
}

func (c *registerTestContext) theChangeIs(change int) error {
	if c.last.Payment.Change != money.Money(change) {
		return fmt.Errorf("expected change %d, got %d", change, c.last.Payment.Change)
	}
	return nil
}

func (c *registerTestContext) theOrderStatusIs(status string) error {
	o, err := c.svc.GetOrder(context.Background(), c.last.ID)
	if err != nil {
		return err
	}
	if string(o.Status) != status {
		return fmt.Errorf("expected status %s, got %s", status, o.Status)
	}
	return nil
}

func (c *registerTestContext) theOperationFailsWith(code string) error {
	e, ok := apperr.As(c.err)
	if !ok {
		return fmt.Errorf("expected %s failure, got %v", code, c.err)
	}
	if e.Code != code {
		return fmt.Errorf("expected %s failure, got %s: %s", code, e.Code, e.Message)
	}
	return nil
}

func (c *registerTestContext) theNextOrderNumberIs(n int) error {
	st, err := c.svc.CurrentStatus(context.Background())
	if err != nil {
		return err
	}
	if !st.Open || st.Session.NextOrderNumber != n {
		return fmt.Errorf("expected next number %d, got %+v", n, st.Session)
	}
	return nil
}

func (c *registerTestContext) iMoveTheOrderTo(status string) error {
	to, ok := order.ParseStatus(status)
	if !ok {
		return fmt.Errorf("unknown status %q", status)
	}
	_, c.err = c.svc.SetOrderStatus(context.Background(), c.last.ID, to)
	return c.err
}

func (c *registerTestContext) iCancelTheOrder() error {
	_, c.err = c.svc.CancelOrder(context.Background(), c.last.ID, "")
	return nil
}

func (c *registerTestContext) theLastOrderIsCancelled() error {
	_, err := c.svc.CancelOrder(context.Background(), c.last.ID, "")
	return err
}

func (c *registerTestContext) iCloseTheRegisterWith(amount int) error {
	c.closed, c.err = c.svc.CloseRegister(context.Background(), register.CloseRequest{ClosingAmount: int64(amount)})
	return c.err
}

func (c *registerTestContext) theExpectedCashIs(amount int) error {
	if c.closed.ExpectedCash != money.Money(amount) {
		return fmt.Errorf("expected cash %d, got %d", amount, c.closed.ExpectedCash)
	}
	return nil
}

func (c *registerTestContext) theVarianceIs(v int) error {
	if c.closed.Variance != int64(v) {
		return fmt.Errorf("expected variance %d, got %d", v, c.closed.Variance)
	}
	return nil
}

func (c *registerTestContext) creatingAnOrderFailsWith(code string) error {
	_, c.err = c.create("Mesa 9", 1, 100, 100)
	return c.theOperationFailsWith(code)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &registerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the register is opened with (\d+)$`, tc.theRegisterIsOpenedWith)
	ctx.Step(`^an order "([^"]*)" of (\d+) units at (\d+) paying (\d+) in cash$`, tc.anOrder)
	ctx.Step(`^the last order is cancelled$`, tc.theLastOrderIsCancelled)

	// When steps
	ctx.Step(`^I open the register with (\d+)$`, tc.iOpenTheRegisterWith)
	ctx.Step(`^I create an order "([^"]*)" of (\d+) units at (\d+) paying (\d+) in cash$`, tc.iCreateAnOrder)
	ctx.Step(`^I move the order to "([^"]*)"$`, tc.iMoveTheOrderTo)
	ctx.Step(`^I cancel the order$`, tc.iCancelTheOrder)
	ctx.Step(`^I close the register with (\d+)$`, tc.iCloseTheRegisterWith)

	// Then steps
	ctx.Step(`^the order is accepted with number (\d+)$`, tc.theOrderIsAcceptedWithNumber)
	ctx.Step(`^the order total is (\d+)$`, tc.theOrderTotalIs)
	ctx.Step(`^the change is (\d+)$`, tc.theChangeIs)
	ctx.Step(`^the order status is "([^"]*)"$`, tc.theOrderStatusIs)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^the next order number is (\d+)$`, tc.theNextOrderNumberIs)
	ctx.Step(`^the expected cash is (\d+)$`, tc.theExpectedCashIs)
	ctx.Step(`^the variance is (\d+)$`, tc.theVarianceIs)
	ctx.Step(`^creating an order fails with "([^"]*)"$`, tc.creatingAnOrderFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/register.feature"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
