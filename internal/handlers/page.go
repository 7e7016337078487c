package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"burrito_orders/internal/models"
)

// OrderPage serves a minimal order form that talks to POST /api/orders.
// Handy for manual testing without the hosted frontend.
func (h *OrderHandler) OrderPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(orderPage()))
}

func orderPage() string {
	var items strings.Builder
	for _, item := range models.Catalog {
		escaped := html.EscapeString(item)
		fmt.Fprintf(&items, `<label class="item"><input type="checkbox" value="%s" onchange="toggle(this)"> %s
<input type="number" min="1" value="1" class="qty" data-item="%s" style="display:none;width:60px;" onblur="clampQty(this)"></label>
`, escaped, escaped, escaped)
	}

	return `<!doctype html>
<html><head><meta charset="utf-8"><title>Burrito Orders</title></head>
<body style="font-family:sans-serif;max-width:640px;margin:40px auto;">
<h3>Order Burritos</h3>
<input id="name" placeholder="Name" style="width:100%;padding:6px;margin:4px 0;">
<input id="email" placeholder="Email (optional)" style="width:100%;padding:6px;margin:4px 0;">
<input id="phone" placeholder="Phone" oninput="formatPhone(this)" style="width:100%;padding:6px;margin:4px 0;">
<div style="margin:8px 0;display:flex;flex-direction:column;gap:4px;">
` + items.String() + `</div>
<textarea id="prefs" placeholder="Preferences (optional)" style="width:100%;padding:6px;margin:4px 0;"></textarea>
<button id="submit" onclick="submitOrder()">Submit</button>
<pre id="out" style="background:#f5f5f5;padding:12px;white-space:pre-wrap;"></pre>
<script>
function toggle(cb){
  const qty = document.querySelector('.qty[data-item="'+cb.value+'"]');
  qty.style.display = cb.checked ? '' : 'none';
}
function clampQty(el){
  const n = parseInt(el.value, 10);
  if (!Number.isInteger(n) || n < 1) el.value = 1;
}
function formatPhone(el){
  let v = el.value;
  const plus = v.replace(/[^+\d]/g, '').startsWith('+');
  let d = v.replace(/\D/g, '');
  if (!plus) {
    v = d.startsWith('1') ? '+' + d : (d === '' ? '' : '+1' + d);
  } else {
    v = '+' + d;
  }
  if (v.length > 1 && !v.startsWith('+1')) v = '+1' + v.slice(1);
  el.value = v.slice(0, 12);
}
async function submitOrder(){
  const out = document.getElementById('out');
  const orders = {};
  document.querySelectorAll('input[type=checkbox]:checked').forEach(cb => {
    const qty = document.querySelector('.qty[data-item="'+cb.value+'"]');
    orders[cb.value] = parseInt(qty.value, 10) || 1;
  });
  const body = {
    name: document.getElementById('name').value,
    email: document.getElementById('email').value,
    phoneNumber: document.getElementById('phone').value,
    burritoOrders: orders,
    preferences: document.getElementById('prefs').value
  };
  const btn = document.getElementById('submit');
  btn.disabled = true;
  out.textContent = 'Submitting...';
  try {
    const r = await fetch('/api/orders', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body)
    });
    const data = await r.json();
    out.textContent = JSON.stringify(data, null, 2);
  } catch (e) {
    out.textContent = 'Request failed: ' + e;
  } finally {
    btn.disabled = false;
  }
}
</script>
</body></html>`
}
